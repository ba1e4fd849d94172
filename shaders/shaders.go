// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders provides the library's stock GLSL programs: flat
// per-vertex color, Blinn-Phong lighting, and textured Phong. Each
// implements [gpu.Shader] and is wrapped in a [gpu.Program] by its
// New constructor; one program instance can serve any number of
// materials and contexts.
package shaders

import (
	"fmt"

	"github.com/intro-graphics/tinygraphics/gl"
	"github.com/intro-graphics/tinygraphics/gpu"
	"github.com/intro-graphics/tinygraphics/math32"
)

// MaxLights is the size of the light uniform arrays. Frame states
// with fewer lights pad with black; extra lights are ignored.
const MaxLights = 2

// setMatrix writes a mat4 uniform.
func setMatrix(ctx gl.Context, loc gl.Uniform, m math32.Matrix4) {
	ctx.UniformMatrix4fv(loc, m[:])
}

// setLights writes the shared light uniform arrays from the frame's
// lights, padded or truncated to [MaxLights].
func setLights(ctx gl.Context, ps *gpu.ProgramState, frame *gpu.FrameState) {
	positions := make([]float32, 0, MaxLights*4)
	colors := make([]float32, 0, MaxLights*4)
	attens := make([]float32, 0, MaxLights)
	for i := 0; i < MaxLights; i++ {
		if i >= len(frame.Lights) {
			positions = append(positions, 0, 0, 0, 0)
			colors = append(colors, 0, 0, 0, 0)
			attens = append(attens, 0)
			continue
		}
		lt := &frame.Lights[i]
		positions = append(positions, lt.Position.X, lt.Position.Y, lt.Position.Z, lt.Position.W)
		colors = append(colors, lt.Color.X, lt.Color.Y, lt.Color.Z, lt.Color.W)
		attens = append(attens, lt.Attenuation())
	}
	ctx.Uniform4fv(ps.Uniform("light_positions_or_vectors"), positions)
	ctx.Uniform4fv(ps.Uniform("light_colors"), colors)
	ctx.Uniform1fv(ps.Uniform("light_attenuation_factors"), attens)
}

// sharedHeader is prepended to both stages of the lighting shaders:
// the light uniforms and the phong_model_lights function, which sums
// the diffuse and specular contribution of every light at a surface
// point. Directional lights have W = 0 in their position vector.
var sharedHeader = fmt.Sprintf(`precision mediump float;
const int N_LIGHTS = %d;
uniform float ambient, diffusivity, specularity, smoothness;
uniform vec4 light_positions_or_vectors[N_LIGHTS];
uniform vec4 light_colors[N_LIGHTS];
uniform float light_attenuation_factors[N_LIGHTS];
uniform vec4 shape_color;
uniform vec3 camera_center;
varying vec3 N, vertex_worldspace;

vec3 phong_model_lights(vec3 N, vec3 vertex_worldspace) {
    vec3 E = normalize(camera_center - vertex_worldspace);
    vec3 result = vec3(0.0);
    for (int i = 0; i < N_LIGHTS; i++) {
        vec3 surface_to_light_vector = light_positions_or_vectors[i].xyz
            - light_positions_or_vectors[i].w * vertex_worldspace;
        float distance_to_light = length(surface_to_light_vector);
        vec3 L = normalize(surface_to_light_vector);
        vec3 H = normalize(L + E);
        float diffuse = max(dot(N, L), 0.0);
        float specular = pow(max(dot(N, H), 0.0), smoothness);
        float attenuation = 1.0 / (1.0
            + light_attenuation_factors[i] * distance_to_light * distance_to_light);
        vec3 light_contribution = shape_color.xyz * light_colors[i].xyz * diffusivity * diffuse
            + light_colors[i].xyz * specularity * specular;
        result += attenuation * light_contribution;
    }
    return result;
}
`, MaxLights)
