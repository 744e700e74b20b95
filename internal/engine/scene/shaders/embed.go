// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader transforms terrain vertices and passes eye-space
// position and normal to the fragment stage.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader shades the terrain with one Phong light, or with a
// flat color when lighting is off.
//
//go:embed mesh.frag
var MeshFragmentShader string

// BackgroundVertexShader emits a full-screen triangle.
//
//go:embed background.vert
var BackgroundVertexShader string

// BackgroundFragmentShader draws the circular backdrop gradient.
//
//go:embed background.frag
var BackgroundFragmentShader string
