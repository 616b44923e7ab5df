package main

const vertexShader = `#version 330 core
layout (location = 0) in vec3 aPos;

void main() {
	gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}`

const orangeFragmentShader = `#version 330 core
out vec4 FragColor;

void main() {
	FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}`

const yellowFragmentShader = `#version 330 core
out vec4 FragColor;

void main() {
	FragColor = vec4(1.0f, 1.0f, 0.0f, 1.0f);
}`
