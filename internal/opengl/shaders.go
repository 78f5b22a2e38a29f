package opengl

// Vertex attributes match core.Vertex: position 0, texCoord 1, normal 2.
// Lighting happens in eye space; lightPositions arrive already multiplied
// by the view matrix.

const meshVertSrc = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec2 texCoord;
layout(location = 2) in vec3 normal;

uniform mat4 projection;
uniform mat4 modelview;

out vec3 vPosition;
out vec3 vNormal;
out vec2 vTexCoord;

void main() {
    vec4 p = modelview * vec4(position, 1.0);
    vPosition = p.xyz;
    vNormal = mat3(transpose(inverse(modelview))) * normal;
    vTexCoord = texCoord;
    gl_Position = projection * p;
}
`

// shadeSrc is shared by the forward and deferred lighting shaders.
const shadeSrc = `
#define MAX_LIGHTS 8

uniform vec3 ambientLight;
uniform uint numLights;
uniform vec4 lightPositions[MAX_LIGHTS];
uniform vec3 lightColors[MAX_LIGHTS];
uniform uint selectedID;

const vec3 highlight = vec3(1.0, 0.6, 0.1);

vec3 shade(vec3 P, vec3 N, vec3 albedo, vec3 specColor, float shininess) {
    vec3 n = normalize(N);
    vec3 v = normalize(-P);
    vec3 color = ambientLight * albedo;
    for (uint i = 0u; i < numLights && i < uint(MAX_LIGHTS); ++i) {
        vec4 lp = lightPositions[i];
        vec3 l = lp.w == 0.0 ? normalize(lp.xyz) : normalize(lp.xyz - P);
        float diff = max(dot(n, l), 0.0);
        color += lightColors[i] * albedo * diff;
        if (diff > 0.0 && shininess > 0.0) {
            vec3 h = normalize(l + v);
            color += lightColors[i] * specColor * pow(max(dot(n, h), 0.0), shininess);
        }
    }
    return color;
}

vec3 markSelected(vec3 color, uint id) {
    return id != 0u && id == selectedID ? mix(color, highlight, 0.4) : color;
}
`

const drawFragSrc = `#version 410 core
in vec3 vPosition;
in vec3 vNormal;
in vec2 vTexCoord;

uniform sampler2D tex;
uniform vec3 diffuseColor;
uniform vec3 specularColor;
uniform float shininess;
uniform uint objectID;
` + shadeSrc + `
out vec4 fragColor;

void main() {
    vec4 texel = texture(tex, vTexCoord);
    vec3 albedo = texel.rgb * diffuseColor;
    vec3 color = shade(vPosition, vNormal, albedo, specularColor, shininess);
    fragColor = vec4(markSelected(color, objectID), texel.a);
}
`

const pickFragSrc = `#version 410 core
uniform uint objectID;

layout(location = 0) out uint fragID;

void main() {
    fragID = objectID;
}
`

// The geometry pass keeps the object id in texCoord.z for selection
// highlighting in the lighting pass.
const geometryFragSrc = `#version 410 core
in vec3 vPosition;
in vec3 vNormal;
in vec2 vTexCoord;

uniform sampler2D tex;
uniform vec3 diffuseColor;
uniform vec3 specularColor;
uniform float shininess;
uniform uint objectID;

layout(location = 0) out vec3 outPosition;
layout(location = 1) out vec3 outDiffuse;
layout(location = 2) out vec3 outNormal;
layout(location = 3) out vec3 outTexCoord;
layout(location = 4) out vec3 outDiffuseColor;
layout(location = 5) out vec3 outSpecularColor;
layout(location = 6) out float outShininess;

void main() {
    outPosition = vPosition;
    outDiffuse = texture(tex, vTexCoord).rgb;
    outNormal = normalize(vNormal);
    outTexCoord = vec3(vTexCoord, float(objectID));
    outDiffuseColor = diffuseColor;
    outSpecularColor = specularColor;
    outShininess = shininess;
}
`

const quadVertSrc = `#version 410 core
layout(location = 0) in vec3 position;

void main() {
    gl_Position = vec4(position, 1.0);
}
`

const lightingFragSrc = `#version 410 core
uniform float screenWidth;
uniform float screenHeight;

uniform sampler2D texPosition;
uniform sampler2D texDiffuse;
uniform sampler2D texNormal;
uniform sampler2D texTexCoord;
uniform sampler2D texDiffuseColor;
uniform sampler2D texSpecularColor;
uniform sampler2D texShininess;
` + shadeSrc + `
out vec4 fragColor;

void main() {
    vec2 uv = gl_FragCoord.xy / vec2(screenWidth, screenHeight);
    vec3 N = texture(texNormal, uv).xyz;
    if (dot(N, N) == 0.0) {
        discard;
    }
    vec3 P = texture(texPosition, uv).xyz;
    vec3 albedo = texture(texDiffuse, uv).rgb * texture(texDiffuseColor, uv).rgb;
    vec3 spec = texture(texSpecularColor, uv).rgb;
    float shininess = texture(texShininess, uv).r;
    uint id = uint(texture(texTexCoord, uv).z + 0.5);

    vec3 color = shade(P, N, albedo, spec, shininess);
    fragColor = vec4(markSelected(color, id), 1.0);
}
`
