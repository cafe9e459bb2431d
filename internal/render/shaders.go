package render

const modelVertexShader = `#version 410 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aTexCoord;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vNormal;
out vec2 vTexCoord;

void main() {
    vNormal = mat3(uModel) * aNormal;
    vTexCoord = aTexCoord;
    gl_Position = uViewProj * uModel * vec4(aPosition, 1.0);
}
`

const modelFragmentShader = `#version 410 core
in vec3 vNormal;
in vec2 vTexCoord;

uniform sampler2D uTexture;
uniform vec4 uDiffuse;
uniform vec3 uLightDir;
uniform vec3 uAmbient;
uniform int uUnlit;

out vec4 FragColor;

void main() {
    vec4 base = uDiffuse * texture(uTexture, vTexCoord);
    if (uUnlit == 1) {
        FragColor = base;
        return;
    }
    vec3 n = normalize(vNormal);
    if (!gl_FrontFacing) {
        n = -n;
    }
    float diff = max(dot(n, -uLightDir), 0.0);
    FragColor = vec4(base.rgb * (uAmbient + diff), base.a);
}
`
