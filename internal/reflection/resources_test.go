package reflection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSamplerResource(t *testing.T) {
	tests := []struct {
		t      GLType
		want   ShaderResource
		wantOK bool
	}{
		{
			t:      GLUnsignedIntSampler2DArray,
			want:   ShaderResource{ResType: ResTexture2DArray, IsTexture: true, IsSRV: true, Variable: TypeDesc{Type: VarUInt, Rows: 1, Cols: 4, Name: "usampler2DArray"}},
			wantOK: true,
		},
		{
			t:      GLIntImageCubeMapArray,
			want:   ShaderResource{ResType: ResTextureCubeArray, IsTexture: true, IsReadWrite: true, Variable: TypeDesc{Type: VarInt, Rows: 1, Cols: 4, Name: "iimageCubeArray"}},
			wantOK: true,
		},
		{
			t:      GLUnsignedIntAtomicCounter,
			want:   ShaderResource{ResType: ResBuffer, IsReadWrite: true, Variable: TypeDesc{Type: VarUInt, Rows: 1, Cols: 1, Name: "atomic_uint"}},
			wantOK: true,
		},
		{t: GLFloatVec4},
	}
	for _, tt := range tests {
		t.Run(tt.t.String(), func(t *testing.T) {
			got, ok := SamplerResource(tt.t)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("resource (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAppendSamplersExpandsArrays(t *testing.T) {
	list := appendSamplers(nil, FlatVariable{Name: "lut", Type: GLSampler3D, ArraySize: 1})
	list = appendSamplers(list, FlatVariable{Name: "tex[0]", Type: GLSampler2D, ArraySize: 3})
	list = appendSamplers(list, FlatVariable{Name: "scale", Type: GLFloat})

	var got []string
	for i, r := range list {
		if r.BindPoint != int32(i) {
			t.Errorf("%s bind point = %d, want %d", r.Name, r.BindPoint, i)
		}
		got = append(got, r.Name)
	}
	if diff := cmp.Diff([]string{"lut", "tex[0]", "tex[1]", "tex[2]"}, got); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
}

func TestGLTypeJSON(t *testing.T) {
	var v FlatVariable
	for _, in := range []string{`{"name":"x","type":"GL_FLOAT_MAT2x3"}`, `{"name":"x","type":35685}`, `{"name":"x","type":"0x8B65"}`} {
		if err := v.UnmarshalJSON([]byte(in)); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if v.Type != GLFloatMat2x3 {
			t.Errorf("%s: type = %v", in, v.Type)
		}
	}
	if err := v.UnmarshalJSON([]byte(`{"name":"x","type":"GL_NOPE"}`)); err == nil {
		t.Error("expected error for unknown enumerant")
	}
	if got, _ := GLFloatMat2x3.MarshalJSON(); string(got) != `"GL_FLOAT_MAT2x3"` {
		t.Errorf("marshal = %s", got)
	}
}
