package reflection

// GL type enumerants as reported by program interface queries.
const (
	GLFloat           GLType = 0x1406
	GLFloatVec2       GLType = 0x8B50
	GLFloatVec3       GLType = 0x8B51
	GLFloatVec4       GLType = 0x8B52
	GLFloatMat2       GLType = 0x8B5A
	GLFloatMat3       GLType = 0x8B5B
	GLFloatMat4       GLType = 0x8B5C
	GLFloatMat2x3     GLType = 0x8B65
	GLFloatMat2x4     GLType = 0x8B66
	GLFloatMat3x2     GLType = 0x8B67
	GLFloatMat3x4     GLType = 0x8B68
	GLFloatMat4x2     GLType = 0x8B69
	GLFloatMat4x3     GLType = 0x8B6A
	GLDouble          GLType = 0x140A
	GLDoubleVec2      GLType = 0x8FFC
	GLDoubleVec3      GLType = 0x8FFD
	GLDoubleVec4      GLType = 0x8FFE
	GLDoubleMat2      GLType = 0x8F46
	GLDoubleMat3      GLType = 0x8F47
	GLDoubleMat4      GLType = 0x8F48
	GLDoubleMat2x3    GLType = 0x8F49
	GLDoubleMat2x4    GLType = 0x8F4A
	GLDoubleMat3x2    GLType = 0x8F4B
	GLDoubleMat3x4    GLType = 0x8F4C
	GLDoubleMat4x2    GLType = 0x8F4D
	GLDoubleMat4x3    GLType = 0x8F4E
	GLInt             GLType = 0x1404
	GLIntVec2         GLType = 0x8B53
	GLIntVec3         GLType = 0x8B54
	GLIntVec4         GLType = 0x8B55
	GLUnsignedInt     GLType = 0x1405
	GLUnsignedIntVec2 GLType = 0x8DC6
	GLUnsignedIntVec3 GLType = 0x8DC7
	GLUnsignedIntVec4 GLType = 0x8DC8
	GLBool            GLType = 0x8B56
	GLBoolVec2        GLType = 0x8B57
	GLBoolVec3        GLType = 0x8B58
	GLBoolVec4        GLType = 0x8B59

	GLSampler1D                            GLType = 0x8B5D
	GLSampler2D                            GLType = 0x8B5E
	GLSampler3D                            GLType = 0x8B5F
	GLSamplerCube                          GLType = 0x8B60
	GLSampler1DShadow                      GLType = 0x8B61
	GLSampler2DShadow                      GLType = 0x8B62
	GLSampler2DRect                        GLType = 0x8B63
	GLSampler2DRectShadow                  GLType = 0x8B64
	GLSampler1DArray                       GLType = 0x8DC0
	GLSampler2DArray                       GLType = 0x8DC1
	GLSamplerBuffer                        GLType = 0x8DC2
	GLSampler1DArrayShadow                 GLType = 0x8DC3
	GLSampler2DArrayShadow                 GLType = 0x8DC4
	GLSamplerCubeShadow                    GLType = 0x8DC5
	GLSamplerCubeMapArray                  GLType = 0x900C
	GLSamplerCubeMapArrayShadow            GLType = 0x900D
	GLSampler2DMultisample                 GLType = 0x9108
	GLSampler2DMultisampleArray            GLType = 0x910B
	GLIntSampler1D                         GLType = 0x8DC9
	GLIntSampler2D                         GLType = 0x8DCA
	GLIntSampler3D                         GLType = 0x8DCB
	GLIntSamplerCube                       GLType = 0x8DCC
	GLIntSampler2DRect                     GLType = 0x8DCD
	GLIntSampler1DArray                    GLType = 0x8DCE
	GLIntSampler2DArray                    GLType = 0x8DCF
	GLIntSamplerBuffer                     GLType = 0x8DD0
	GLIntSamplerCubeMapArray               GLType = 0x900E
	GLIntSampler2DMultisample              GLType = 0x9109
	GLIntSampler2DMultisampleArray         GLType = 0x910C
	GLUnsignedIntSampler1D                 GLType = 0x8DD1
	GLUnsignedIntSampler2D                 GLType = 0x8DD2
	GLUnsignedIntSampler3D                 GLType = 0x8DD3
	GLUnsignedIntSamplerCube               GLType = 0x8DD4
	GLUnsignedIntSampler2DRect             GLType = 0x8DD5
	GLUnsignedIntSampler1DArray            GLType = 0x8DD6
	GLUnsignedIntSampler2DArray            GLType = 0x8DD7
	GLUnsignedIntSamplerBuffer             GLType = 0x8DD8
	GLUnsignedIntSamplerCubeMapArray       GLType = 0x900F
	GLUnsignedIntSampler2DMultisample      GLType = 0x910A
	GLUnsignedIntSampler2DMultisampleArray GLType = 0x910D

	GLImage1D                            GLType = 0x904C
	GLImage2D                            GLType = 0x904D
	GLImage3D                            GLType = 0x904E
	GLImage2DRect                        GLType = 0x904F
	GLImageCube                          GLType = 0x9050
	GLImageBuffer                        GLType = 0x9051
	GLImage1DArray                       GLType = 0x9052
	GLImage2DArray                       GLType = 0x9053
	GLImageCubeMapArray                  GLType = 0x9054
	GLImage2DMultisample                 GLType = 0x9055
	GLImage2DMultisampleArray            GLType = 0x9056
	GLIntImage1D                         GLType = 0x9057
	GLIntImage2D                         GLType = 0x9058
	GLIntImage3D                         GLType = 0x9059
	GLIntImage2DRect                     GLType = 0x905A
	GLIntImageCube                       GLType = 0x905B
	GLIntImageBuffer                     GLType = 0x905C
	GLIntImage1DArray                    GLType = 0x905D
	GLIntImage2DArray                    GLType = 0x905E
	GLIntImageCubeMapArray               GLType = 0x905F
	GLIntImage2DMultisample              GLType = 0x9060
	GLIntImage2DMultisampleArray         GLType = 0x9061
	GLUnsignedIntImage1D                 GLType = 0x9062
	GLUnsignedIntImage2D                 GLType = 0x9063
	GLUnsignedIntImage3D                 GLType = 0x9064
	GLUnsignedIntImage2DRect             GLType = 0x9065
	GLUnsignedIntImageCube               GLType = 0x9066
	GLUnsignedIntImageBuffer             GLType = 0x9067
	GLUnsignedIntImage1DArray            GLType = 0x9068
	GLUnsignedIntImage2DArray            GLType = 0x9069
	GLUnsignedIntImageCubeMapArray       GLType = 0x906A
	GLUnsignedIntImage2DMultisample      GLType = 0x906B
	GLUnsignedIntImage2DMultisampleArray GLType = 0x906C

	GLUnsignedIntAtomicCounter GLType = 0x92DB
)

var numericTypes = map[GLType]TypeDesc{
	GLFloat:           {Type: VarFloat, Rows: 1, Cols: 1, Name: "float"},
	GLFloatVec2:       {Type: VarFloat, Rows: 1, Cols: 2, Name: "vec2"},
	GLFloatVec3:       {Type: VarFloat, Rows: 1, Cols: 3, Name: "vec3"},
	GLFloatVec4:       {Type: VarFloat, Rows: 1, Cols: 4, Name: "vec4"},
	GLFloatMat2:       {Type: VarFloat, Rows: 2, Cols: 2, Name: "mat2"},
	GLFloatMat3:       {Type: VarFloat, Rows: 3, Cols: 3, Name: "mat3"},
	GLFloatMat4:       {Type: VarFloat, Rows: 4, Cols: 4, Name: "mat4"},
	GLFloatMat2x3:     {Type: VarFloat, Rows: 3, Cols: 2, Name: "mat2x3"},
	GLFloatMat2x4:     {Type: VarFloat, Rows: 4, Cols: 2, Name: "mat2x4"},
	GLFloatMat3x2:     {Type: VarFloat, Rows: 2, Cols: 3, Name: "mat3x2"},
	GLFloatMat3x4:     {Type: VarFloat, Rows: 4, Cols: 3, Name: "mat3x4"},
	GLFloatMat4x2:     {Type: VarFloat, Rows: 2, Cols: 4, Name: "mat4x2"},
	GLFloatMat4x3:     {Type: VarFloat, Rows: 3, Cols: 4, Name: "mat4x3"},
	GLDouble:          {Type: VarDouble, Rows: 1, Cols: 1, Name: "double"},
	GLDoubleVec2:      {Type: VarDouble, Rows: 1, Cols: 2, Name: "dvec2"},
	GLDoubleVec3:      {Type: VarDouble, Rows: 1, Cols: 3, Name: "dvec3"},
	GLDoubleVec4:      {Type: VarDouble, Rows: 1, Cols: 4, Name: "dvec4"},
	GLDoubleMat2:      {Type: VarDouble, Rows: 2, Cols: 2, Name: "dmat2"},
	GLDoubleMat3:      {Type: VarDouble, Rows: 3, Cols: 3, Name: "dmat3"},
	GLDoubleMat4:      {Type: VarDouble, Rows: 4, Cols: 4, Name: "dmat4"},
	GLDoubleMat2x3:    {Type: VarDouble, Rows: 3, Cols: 2, Name: "dmat2x3"},
	GLDoubleMat2x4:    {Type: VarDouble, Rows: 4, Cols: 2, Name: "dmat2x4"},
	GLDoubleMat3x2:    {Type: VarDouble, Rows: 2, Cols: 3, Name: "dmat3x2"},
	GLDoubleMat3x4:    {Type: VarDouble, Rows: 4, Cols: 3, Name: "dmat3x4"},
	GLDoubleMat4x2:    {Type: VarDouble, Rows: 2, Cols: 4, Name: "dmat4x2"},
	GLDoubleMat4x3:    {Type: VarDouble, Rows: 3, Cols: 4, Name: "dmat4x3"},
	GLInt:             {Type: VarInt, Rows: 1, Cols: 1, Name: "int"},
	GLIntVec2:         {Type: VarInt, Rows: 1, Cols: 2, Name: "ivec2"},
	GLIntVec3:         {Type: VarInt, Rows: 1, Cols: 3, Name: "ivec3"},
	GLIntVec4:         {Type: VarInt, Rows: 1, Cols: 4, Name: "ivec4"},
	GLUnsignedInt:     {Type: VarUInt, Rows: 1, Cols: 1, Name: "uint"},
	GLUnsignedIntVec2: {Type: VarUInt, Rows: 1, Cols: 2, Name: "uvec2"},
	GLUnsignedIntVec3: {Type: VarUInt, Rows: 1, Cols: 3, Name: "uvec3"},
	GLUnsignedIntVec4: {Type: VarUInt, Rows: 1, Cols: 4, Name: "uvec4"},
	GLBool:            {Type: VarUInt, Rows: 1, Cols: 1, Name: "bool"},
	GLBoolVec2:        {Type: VarUInt, Rows: 1, Cols: 2, Name: "bvec2"},
	GLBoolVec3:        {Type: VarUInt, Rows: 1, Cols: 3, Name: "bvec3"},
	GLBoolVec4:        {Type: VarUInt, Rows: 1, Cols: 4, Name: "bvec4"},
}

type resourceKind struct {
	resType ResourceType
	varType VarType
	name    string
	image   bool
}

var resourceTypes = map[GLType]resourceKind{
	GLSampler1D:                            {ResTexture1D, VarFloat, "sampler1D", false},
	GLSampler2D:                            {ResTexture2D, VarFloat, "sampler2D", false},
	GLSampler3D:                            {ResTexture3D, VarFloat, "sampler3D", false},
	GLSamplerCube:                          {ResTextureCube, VarFloat, "samplerCube", false},
	GLSampler1DShadow:                      {ResTexture1D, VarFloat, "sampler1DShadow", false},
	GLSampler2DShadow:                      {ResTexture2D, VarFloat, "sampler2DShadow", false},
	GLSampler2DRect:                        {ResTextureRect, VarFloat, "sampler2DRect", false},
	GLSampler2DRectShadow:                  {ResTextureRect, VarFloat, "sampler2DRectShadow", false},
	GLSampler1DArray:                       {ResTexture1DArray, VarFloat, "sampler1DArray", false},
	GLSampler2DArray:                       {ResTexture2DArray, VarFloat, "sampler2DArray", false},
	GLSamplerBuffer:                        {ResBuffer, VarFloat, "samplerBuffer", false},
	GLSampler1DArrayShadow:                 {ResTexture1DArray, VarFloat, "sampler1DArrayShadow", false},
	GLSampler2DArrayShadow:                 {ResTexture2DArray, VarFloat, "sampler2DArrayShadow", false},
	GLSamplerCubeShadow:                    {ResTextureCube, VarFloat, "samplerCubeShadow", false},
	GLSamplerCubeMapArray:                  {ResTextureCubeArray, VarFloat, "samplerCubeArray", false},
	GLSamplerCubeMapArrayShadow:            {ResTextureCubeArray, VarFloat, "samplerCubeArrayShadow", false},
	GLSampler2DMultisample:                 {ResTexture2DMS, VarFloat, "sampler2DMS", false},
	GLSampler2DMultisampleArray:            {ResTexture2DMSArray, VarFloat, "sampler2DMSArray", false},
	GLIntSampler1D:                         {ResTexture1D, VarInt, "isampler1D", false},
	GLIntSampler2D:                         {ResTexture2D, VarInt, "isampler2D", false},
	GLIntSampler3D:                         {ResTexture3D, VarInt, "isampler3D", false},
	GLIntSamplerCube:                       {ResTextureCube, VarInt, "isamplerCube", false},
	GLIntSampler2DRect:                     {ResTextureRect, VarInt, "isampler2DRect", false},
	GLIntSampler1DArray:                    {ResTexture1DArray, VarInt, "isampler1DArray", false},
	GLIntSampler2DArray:                    {ResTexture2DArray, VarInt, "isampler2DArray", false},
	GLIntSamplerBuffer:                     {ResBuffer, VarInt, "isamplerBuffer", false},
	GLIntSamplerCubeMapArray:               {ResTextureCubeArray, VarInt, "isamplerCubeArray", false},
	GLIntSampler2DMultisample:              {ResTexture2DMS, VarInt, "isampler2DMS", false},
	GLIntSampler2DMultisampleArray:         {ResTexture2DMSArray, VarInt, "isampler2DMSArray", false},
	GLUnsignedIntSampler1D:                 {ResTexture1D, VarUInt, "usampler1D", false},
	GLUnsignedIntSampler2D:                 {ResTexture2D, VarUInt, "usampler2D", false},
	GLUnsignedIntSampler3D:                 {ResTexture3D, VarUInt, "usampler3D", false},
	GLUnsignedIntSamplerCube:               {ResTextureCube, VarUInt, "usamplerCube", false},
	GLUnsignedIntSampler2DRect:             {ResTextureRect, VarUInt, "usampler2DRect", false},
	GLUnsignedIntSampler1DArray:            {ResTexture1DArray, VarUInt, "usampler1DArray", false},
	GLUnsignedIntSampler2DArray:            {ResTexture2DArray, VarUInt, "usampler2DArray", false},
	GLUnsignedIntSamplerBuffer:             {ResBuffer, VarUInt, "usamplerBuffer", false},
	GLUnsignedIntSamplerCubeMapArray:       {ResTextureCubeArray, VarUInt, "usamplerCubeArray", false},
	GLUnsignedIntSampler2DMultisample:      {ResTexture2DMS, VarUInt, "usampler2DMS", false},
	GLUnsignedIntSampler2DMultisampleArray: {ResTexture2DMSArray, VarUInt, "usampler2DMSArray", false},
	GLImage1D:                              {ResTexture1D, VarFloat, "image1D", true},
	GLImage2D:                              {ResTexture2D, VarFloat, "image2D", true},
	GLImage3D:                              {ResTexture3D, VarFloat, "image3D", true},
	GLImage2DRect:                          {ResTextureRect, VarFloat, "image2DRect", true},
	GLImageCube:                            {ResTextureCube, VarFloat, "imageCube", true},
	GLImageBuffer:                          {ResBuffer, VarFloat, "imageBuffer", true},
	GLImage1DArray:                         {ResTexture1DArray, VarFloat, "image1DArray", true},
	GLImage2DArray:                         {ResTexture2DArray, VarFloat, "image2DArray", true},
	GLImageCubeMapArray:                    {ResTextureCubeArray, VarFloat, "imageCubeArray", true},
	GLImage2DMultisample:                   {ResTexture2DMS, VarFloat, "image2DMS", true},
	GLImage2DMultisampleArray:              {ResTexture2DMSArray, VarFloat, "image2DMSArray", true},
	GLIntImage1D:                           {ResTexture1D, VarInt, "iimage1D", true},
	GLIntImage2D:                           {ResTexture2D, VarInt, "iimage2D", true},
	GLIntImage3D:                           {ResTexture3D, VarInt, "iimage3D", true},
	GLIntImage2DRect:                       {ResTextureRect, VarInt, "iimage2DRect", true},
	GLIntImageCube:                         {ResTextureCube, VarInt, "iimageCube", true},
	GLIntImageBuffer:                       {ResBuffer, VarInt, "iimageBuffer", true},
	GLIntImage1DArray:                      {ResTexture1DArray, VarInt, "iimage1DArray", true},
	GLIntImage2DArray:                      {ResTexture2DArray, VarInt, "iimage2DArray", true},
	GLIntImageCubeMapArray:                 {ResTextureCubeArray, VarInt, "iimageCubeArray", true},
	GLIntImage2DMultisample:                {ResTexture2DMS, VarInt, "iimage2DMS", true},
	GLIntImage2DMultisampleArray:           {ResTexture2DMSArray, VarInt, "iimage2DMSArray", true},
	GLUnsignedIntImage1D:                   {ResTexture1D, VarUInt, "uimage1D", true},
	GLUnsignedIntImage2D:                   {ResTexture2D, VarUInt, "uimage2D", true},
	GLUnsignedIntImage3D:                   {ResTexture3D, VarUInt, "uimage3D", true},
	GLUnsignedIntImage2DRect:               {ResTextureRect, VarUInt, "uimage2DRect", true},
	GLUnsignedIntImageCube:                 {ResTextureCube, VarUInt, "uimageCube", true},
	GLUnsignedIntImageBuffer:               {ResBuffer, VarUInt, "uimageBuffer", true},
	GLUnsignedIntImage1DArray:              {ResTexture1DArray, VarUInt, "uimage1DArray", true},
	GLUnsignedIntImage2DArray:              {ResTexture2DArray, VarUInt, "uimage2DArray", true},
	GLUnsignedIntImageCubeMapArray:         {ResTextureCubeArray, VarUInt, "uimageCubeArray", true},
	GLUnsignedIntImage2DMultisample:        {ResTexture2DMS, VarUInt, "uimage2DMS", true},
	GLUnsignedIntImage2DMultisampleArray:   {ResTexture2DMSArray, VarUInt, "uimage2DMSArray", true},
}

var glTypeNames = map[GLType]string{
	GLFloat:                                "GL_FLOAT",
	GLFloatVec2:                            "GL_FLOAT_VEC2",
	GLFloatVec3:                            "GL_FLOAT_VEC3",
	GLFloatVec4:                            "GL_FLOAT_VEC4",
	GLFloatMat2:                            "GL_FLOAT_MAT2",
	GLFloatMat3:                            "GL_FLOAT_MAT3",
	GLFloatMat4:                            "GL_FLOAT_MAT4",
	GLFloatMat2x3:                          "GL_FLOAT_MAT2x3",
	GLFloatMat2x4:                          "GL_FLOAT_MAT2x4",
	GLFloatMat3x2:                          "GL_FLOAT_MAT3x2",
	GLFloatMat3x4:                          "GL_FLOAT_MAT3x4",
	GLFloatMat4x2:                          "GL_FLOAT_MAT4x2",
	GLFloatMat4x3:                          "GL_FLOAT_MAT4x3",
	GLDouble:                               "GL_DOUBLE",
	GLDoubleVec2:                           "GL_DOUBLE_VEC2",
	GLDoubleVec3:                           "GL_DOUBLE_VEC3",
	GLDoubleVec4:                           "GL_DOUBLE_VEC4",
	GLDoubleMat2:                           "GL_DOUBLE_MAT2",
	GLDoubleMat3:                           "GL_DOUBLE_MAT3",
	GLDoubleMat4:                           "GL_DOUBLE_MAT4",
	GLDoubleMat2x3:                         "GL_DOUBLE_MAT2x3",
	GLDoubleMat2x4:                         "GL_DOUBLE_MAT2x4",
	GLDoubleMat3x2:                         "GL_DOUBLE_MAT3x2",
	GLDoubleMat3x4:                         "GL_DOUBLE_MAT3x4",
	GLDoubleMat4x2:                         "GL_DOUBLE_MAT4x2",
	GLDoubleMat4x3:                         "GL_DOUBLE_MAT4x3",
	GLInt:                                  "GL_INT",
	GLIntVec2:                              "GL_INT_VEC2",
	GLIntVec3:                              "GL_INT_VEC3",
	GLIntVec4:                              "GL_INT_VEC4",
	GLUnsignedInt:                          "GL_UNSIGNED_INT",
	GLUnsignedIntVec2:                      "GL_UNSIGNED_INT_VEC2",
	GLUnsignedIntVec3:                      "GL_UNSIGNED_INT_VEC3",
	GLUnsignedIntVec4:                      "GL_UNSIGNED_INT_VEC4",
	GLBool:                                 "GL_BOOL",
	GLBoolVec2:                             "GL_BOOL_VEC2",
	GLBoolVec3:                             "GL_BOOL_VEC3",
	GLBoolVec4:                             "GL_BOOL_VEC4",
	GLSampler1D:                            "GL_SAMPLER_1D",
	GLSampler2D:                            "GL_SAMPLER_2D",
	GLSampler3D:                            "GL_SAMPLER_3D",
	GLSamplerCube:                          "GL_SAMPLER_CUBE",
	GLSampler1DShadow:                      "GL_SAMPLER_1D_SHADOW",
	GLSampler2DShadow:                      "GL_SAMPLER_2D_SHADOW",
	GLSampler2DRect:                        "GL_SAMPLER_2D_RECT",
	GLSampler2DRectShadow:                  "GL_SAMPLER_2D_RECT_SHADOW",
	GLSampler1DArray:                       "GL_SAMPLER_1D_ARRAY",
	GLSampler2DArray:                       "GL_SAMPLER_2D_ARRAY",
	GLSamplerBuffer:                        "GL_SAMPLER_BUFFER",
	GLSampler1DArrayShadow:                 "GL_SAMPLER_1D_ARRAY_SHADOW",
	GLSampler2DArrayShadow:                 "GL_SAMPLER_2D_ARRAY_SHADOW",
	GLSamplerCubeShadow:                    "GL_SAMPLER_CUBE_SHADOW",
	GLSamplerCubeMapArray:                  "GL_SAMPLER_CUBE_MAP_ARRAY",
	GLSamplerCubeMapArrayShadow:            "GL_SAMPLER_CUBE_MAP_ARRAY_SHADOW",
	GLSampler2DMultisample:                 "GL_SAMPLER_2D_MULTISAMPLE",
	GLSampler2DMultisampleArray:            "GL_SAMPLER_2D_MULTISAMPLE_ARRAY",
	GLIntSampler1D:                         "GL_INT_SAMPLER_1D",
	GLIntSampler2D:                         "GL_INT_SAMPLER_2D",
	GLIntSampler3D:                         "GL_INT_SAMPLER_3D",
	GLIntSamplerCube:                       "GL_INT_SAMPLER_CUBE",
	GLIntSampler2DRect:                     "GL_INT_SAMPLER_2D_RECT",
	GLIntSampler1DArray:                    "GL_INT_SAMPLER_1D_ARRAY",
	GLIntSampler2DArray:                    "GL_INT_SAMPLER_2D_ARRAY",
	GLIntSamplerBuffer:                     "GL_INT_SAMPLER_BUFFER",
	GLIntSamplerCubeMapArray:               "GL_INT_SAMPLER_CUBE_MAP_ARRAY",
	GLIntSampler2DMultisample:              "GL_INT_SAMPLER_2D_MULTISAMPLE",
	GLIntSampler2DMultisampleArray:         "GL_INT_SAMPLER_2D_MULTISAMPLE_ARRAY",
	GLUnsignedIntSampler1D:                 "GL_UNSIGNED_INT_SAMPLER_1D",
	GLUnsignedIntSampler2D:                 "GL_UNSIGNED_INT_SAMPLER_2D",
	GLUnsignedIntSampler3D:                 "GL_UNSIGNED_INT_SAMPLER_3D",
	GLUnsignedIntSamplerCube:               "GL_UNSIGNED_INT_SAMPLER_CUBE",
	GLUnsignedIntSampler2DRect:             "GL_UNSIGNED_INT_SAMPLER_2D_RECT",
	GLUnsignedIntSampler1DArray:            "GL_UNSIGNED_INT_SAMPLER_1D_ARRAY",
	GLUnsignedIntSampler2DArray:            "GL_UNSIGNED_INT_SAMPLER_2D_ARRAY",
	GLUnsignedIntSamplerBuffer:             "GL_UNSIGNED_INT_SAMPLER_BUFFER",
	GLUnsignedIntSamplerCubeMapArray:       "GL_UNSIGNED_INT_SAMPLER_CUBE_MAP_ARRAY",
	GLUnsignedIntSampler2DMultisample:      "GL_UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE",
	GLUnsignedIntSampler2DMultisampleArray: "GL_UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE_ARRAY",
	GLImage1D:                              "GL_IMAGE_1D",
	GLImage2D:                              "GL_IMAGE_2D",
	GLImage3D:                              "GL_IMAGE_3D",
	GLImage2DRect:                          "GL_IMAGE_2D_RECT",
	GLImageCube:                            "GL_IMAGE_CUBE",
	GLImageBuffer:                          "GL_IMAGE_BUFFER",
	GLImage1DArray:                         "GL_IMAGE_1D_ARRAY",
	GLImage2DArray:                         "GL_IMAGE_2D_ARRAY",
	GLImageCubeMapArray:                    "GL_IMAGE_CUBE_MAP_ARRAY",
	GLImage2DMultisample:                   "GL_IMAGE_2D_MULTISAMPLE",
	GLImage2DMultisampleArray:              "GL_IMAGE_2D_MULTISAMPLE_ARRAY",
	GLIntImage1D:                           "GL_INT_IMAGE_1D",
	GLIntImage2D:                           "GL_INT_IMAGE_2D",
	GLIntImage3D:                           "GL_INT_IMAGE_3D",
	GLIntImage2DRect:                       "GL_INT_IMAGE_2D_RECT",
	GLIntImageCube:                         "GL_INT_IMAGE_CUBE",
	GLIntImageBuffer:                       "GL_INT_IMAGE_BUFFER",
	GLIntImage1DArray:                      "GL_INT_IMAGE_1D_ARRAY",
	GLIntImage2DArray:                      "GL_INT_IMAGE_2D_ARRAY",
	GLIntImageCubeMapArray:                 "GL_INT_IMAGE_CUBE_MAP_ARRAY",
	GLIntImage2DMultisample:                "GL_INT_IMAGE_2D_MULTISAMPLE",
	GLIntImage2DMultisampleArray:           "GL_INT_IMAGE_2D_MULTISAMPLE_ARRAY",
	GLUnsignedIntImage1D:                   "GL_UNSIGNED_INT_IMAGE_1D",
	GLUnsignedIntImage2D:                   "GL_UNSIGNED_INT_IMAGE_2D",
	GLUnsignedIntImage3D:                   "GL_UNSIGNED_INT_IMAGE_3D",
	GLUnsignedIntImage2DRect:               "GL_UNSIGNED_INT_IMAGE_2D_RECT",
	GLUnsignedIntImageCube:                 "GL_UNSIGNED_INT_IMAGE_CUBE",
	GLUnsignedIntImageBuffer:               "GL_UNSIGNED_INT_IMAGE_BUFFER",
	GLUnsignedIntImage1DArray:              "GL_UNSIGNED_INT_IMAGE_1D_ARRAY",
	GLUnsignedIntImage2DArray:              "GL_UNSIGNED_INT_IMAGE_2D_ARRAY",
	GLUnsignedIntImageCubeMapArray:         "GL_UNSIGNED_INT_IMAGE_CUBE_MAP_ARRAY",
	GLUnsignedIntImage2DMultisample:        "GL_UNSIGNED_INT_IMAGE_2D_MULTISAMPLE",
	GLUnsignedIntImage2DMultisampleArray:   "GL_UNSIGNED_INT_IMAGE_2D_MULTISAMPLE_ARRAY",
	GLUnsignedIntAtomicCounter:             "GL_UNSIGNED_INT_ATOMIC_COUNTER",
}
