package render

var vertexShader = `
#version 330 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec3 color;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 vertexColor;

void main() {
	gl_Position = projection * view * model * vec4(position, 1.0);
	vertexColor = color;
}` + "\x00"

var fragmentShader = `
#version 330 core
in vec3 vertexColor;
out vec4 fragColor;

void main() {
	fragColor = vec4(vertexColor, 1.0);
}` + "\x00"
