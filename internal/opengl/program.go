package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"sceneview/math"
)

// program is a linked shader program with a uniform location cache.
type program struct {
	id   uint32
	name string
	locs map[string]int32
}

func newProgram(name, vertSrc, fragSrc string) (*program, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s vertex: %w", name, err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return nil, fmt.Errorf("%s fragment: %w", name, err)
	}

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(id, logLen, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("%s link failed: %v", name, log)
	}

	return &program{id: id, name: name, locs: make(map[string]int32)}, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}

func (p *program) use() { gl.UseProgram(p.id) }

// loc returns the uniform location, -1 when the program does not use it.
func (p *program) loc(name string) int32 {
	if l, ok := p.locs[name]; ok {
		return l
	}
	l := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locs[name] = l
	return l
}

// Uniform setters skip names the linker optimised away.

func (p *program) setInt(name string, v int32) {
	if l := p.loc(name); l >= 0 {
		gl.Uniform1i(l, v)
	}
}

func (p *program) setUint(name string, v uint32) {
	if l := p.loc(name); l >= 0 {
		gl.Uniform1ui(l, v)
	}
}

func (p *program) setFloat(name string, v float32) {
	if l := p.loc(name); l >= 0 {
		gl.Uniform1f(l, v)
	}
}

func (p *program) setVec3(name string, v math.Vector3) {
	if l := p.loc(name); l >= 0 {
		gl.Uniform3fv(l, 1, v.Ptr())
	}
}

func (p *program) setVec3s(name string, vs []math.Vector3) {
	if l := p.loc(name); l >= 0 && len(vs) > 0 {
		gl.Uniform3fv(l, int32(len(vs)), &vs[0][0])
	}
}

func (p *program) setVec4s(name string, vs []math.Vector4) {
	if l := p.loc(name); l >= 0 && len(vs) > 0 {
		gl.Uniform4fv(l, int32(len(vs)), &vs[0][0])
	}
}

func (p *program) setMat4(name string, m *math.Matrix4) {
	if l := p.loc(name); l >= 0 {
		gl.UniformMatrix4fv(l, 1, false, m.Ptr())
	}
}

func (p *program) destroy() {
	if p != nil && p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
