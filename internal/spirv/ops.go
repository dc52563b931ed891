package spirv

// opInfo describes how an instruction's operand words are laid out.
//
// Layout characters, one per operand in order:
//
//	t  result type id
//	r  result id
//	i  id operand
//	l  literal number
//	s  nul-terminated literal string (one or more words)
//	c  capability enumerant
//	S  storage class enumerant
//	D  decoration enumerant
//	M  execution mode enumerant
//
// A trailing '*' repeats the preceding kind until the instruction ends.
// Operands not covered by the layout are dumped as literal numbers.
type opInfo struct {
	name   string
	layout string
}

var opTable = map[Op]opInfo{
	0:   {"Nop", ""},
	1:   {"Undef", "tr"},
	2:   {"SourceContinued", "s"},
	3:   {"Source", "ll"},
	4:   {"SourceExtension", "s"},
	5:   {"Name", "is"},
	6:   {"MemberName", "ils"},
	7:   {"String", "rs"},
	8:   {"Line", "ill"},
	10:  {"Extension", "s"},
	11:  {"ExtInstImport", "rs"},
	12:  {"ExtInst", "trili*"},
	14:  {"MemoryModel", "ll"},
	15:  {"EntryPoint", "lisi*"},
	16:  {"ExecutionMode", "iMl*"},
	17:  {"Capability", "c"},
	19:  {"TypeVoid", "r"},
	20:  {"TypeBool", "r"},
	21:  {"TypeInt", "rll"},
	22:  {"TypeFloat", "rl"},
	23:  {"TypeVector", "ril"},
	24:  {"TypeMatrix", "ril"},
	25:  {"TypeImage", "rillllll*"},
	26:  {"TypeSampler", "r"},
	27:  {"TypeSampledImage", "ri"},
	28:  {"TypeArray", "rii"},
	29:  {"TypeRuntimeArray", "ri"},
	30:  {"TypeStruct", "ri*"},
	31:  {"TypeOpaque", "rs"},
	32:  {"TypePointer", "rSi"},
	33:  {"TypeFunction", "rii*"},
	41:  {"ConstantTrue", "tr"},
	42:  {"ConstantFalse", "tr"},
	43:  {"Constant", "trl*"},
	44:  {"ConstantComposite", "tri*"},
	45:  {"ConstantSampler", "trlll"},
	46:  {"ConstantNull", "tr"},
	48:  {"SpecConstantTrue", "tr"},
	49:  {"SpecConstantFalse", "tr"},
	50:  {"SpecConstant", "trl*"},
	51:  {"SpecConstantComposite", "tri*"},
	52:  {"SpecConstantOp", "trll*"},
	54:  {"Function", "trli"},
	55:  {"FunctionParameter", "tr"},
	56:  {"FunctionEnd", ""},
	57:  {"FunctionCall", "trii*"},
	59:  {"Variable", "trSi*"},
	60:  {"ImageTexelPointer", "triii"},
	61:  {"Load", "tril*"},
	62:  {"Store", "iil*"},
	63:  {"CopyMemory", "iil*"},
	64:  {"CopyMemorySized", "iiil*"},
	65:  {"AccessChain", "trii*"},
	66:  {"InBoundsAccessChain", "trii*"},
	67:  {"PtrAccessChain", "triii*"},
	68:  {"ArrayLength", "tril"},
	71:  {"Decorate", "iDl*"},
	72:  {"MemberDecorate", "ilDl*"},
	73:  {"DecorationGroup", "r"},
	74:  {"GroupDecorate", "ii*"},
	75:  {"GroupMemberDecorate", "il*"},
	77:  {"VectorExtractDynamic", "trii"},
	78:  {"VectorInsertDynamic", "triii"},
	79:  {"VectorShuffle", "triil*"},
	80:  {"CompositeConstruct", "tri*"},
	81:  {"CompositeExtract", "tril*"},
	82:  {"CompositeInsert", "triil*"},
	83:  {"CopyObject", "tri"},
	84:  {"Transpose", "tri"},
	86:  {"SampledImage", "trii"},
	87:  {"ImageSampleImplicitLod", "triil*"},
	88:  {"ImageSampleExplicitLod", "triil*"},
	89:  {"ImageSampleDrefImplicitLod", "triiil*"},
	90:  {"ImageSampleDrefExplicitLod", "triiil*"},
	91:  {"ImageSampleProjImplicitLod", "triil*"},
	92:  {"ImageSampleProjExplicitLod", "triil*"},
	93:  {"ImageSampleProjDrefImplicitLod", "triiil*"},
	94:  {"ImageSampleProjDrefExplicitLod", "triiil*"},
	95:  {"ImageFetch", "triil*"},
	96:  {"ImageGather", "triiil*"},
	97:  {"ImageDrefGather", "triiil*"},
	98:  {"ImageRead", "triil*"},
	99:  {"ImageWrite", "iiil*"},
	100: {"Image", "tri"},
	101: {"ImageQueryFormat", "tri"},
	102: {"ImageQueryOrder", "tri"},
	103: {"ImageQuerySizeLod", "trii"},
	104: {"ImageQuerySize", "tri"},
	105: {"ImageQueryLod", "trii"},
	106: {"ImageQueryLevels", "tri"},
	107: {"ImageQuerySamples", "tri"},
	109: {"ConvertFToU", "tri"},
	110: {"ConvertFToS", "tri"},
	111: {"ConvertSToF", "tri"},
	112: {"ConvertUToF", "tri"},
	113: {"UConvert", "tri"},
	114: {"SConvert", "tri"},
	115: {"FConvert", "tri"},
	116: {"QuantizeToF16", "tri"},
	117: {"ConvertPtrToU", "tri"},
	118: {"SatConvertSToU", "tri"},
	119: {"SatConvertUToS", "tri"},
	120: {"ConvertUToPtr", "tri"},
	121: {"PtrCastToGeneric", "tri"},
	122: {"GenericCastToPtr", "tri"},
	123: {"GenericCastToPtrExplicit", "triS"},
	124: {"Bitcast", "tri"},
	126: {"SNegate", "tri"},
	127: {"FNegate", "tri"},
	128: {"IAdd", "trii"},
	129: {"FAdd", "trii"},
	130: {"ISub", "trii"},
	131: {"FSub", "trii"},
	132: {"IMul", "trii"},
	133: {"FMul", "trii"},
	134: {"UDiv", "trii"},
	135: {"SDiv", "trii"},
	136: {"FDiv", "trii"},
	137: {"UMod", "trii"},
	138: {"SRem", "trii"},
	139: {"SMod", "trii"},
	140: {"FRem", "trii"},
	141: {"FMod", "trii"},
	142: {"VectorTimesScalar", "trii"},
	143: {"MatrixTimesScalar", "trii"},
	144: {"VectorTimesMatrix", "trii"},
	145: {"MatrixTimesVector", "trii"},
	146: {"MatrixTimesMatrix", "trii"},
	147: {"OuterProduct", "trii"},
	148: {"Dot", "trii"},
	149: {"IAddCarry", "trii"},
	150: {"ISubBorrow", "trii"},
	151: {"UMulExtended", "trii"},
	152: {"SMulExtended", "trii"},
	154: {"Any", "tri"},
	155: {"All", "tri"},
	156: {"IsNan", "tri"},
	157: {"IsInf", "tri"},
	158: {"IsFinite", "tri"},
	159: {"IsNormal", "tri"},
	160: {"SignBitSet", "tri"},
	161: {"LessOrGreater", "trii"},
	162: {"Ordered", "trii"},
	163: {"Unordered", "trii"},
	164: {"LogicalEqual", "trii"},
	165: {"LogicalNotEqual", "trii"},
	166: {"LogicalOr", "trii"},
	167: {"LogicalAnd", "trii"},
	168: {"LogicalNot", "tri"},
	169: {"Select", "triii"},
	170: {"IEqual", "trii"},
	171: {"INotEqual", "trii"},
	172: {"UGreaterThan", "trii"},
	173: {"SGreaterThan", "trii"},
	174: {"UGreaterThanEqual", "trii"},
	175: {"SGreaterThanEqual", "trii"},
	176: {"ULessThan", "trii"},
	177: {"SLessThan", "trii"},
	178: {"ULessThanEqual", "trii"},
	179: {"SLessThanEqual", "trii"},
	180: {"FOrdEqual", "trii"},
	181: {"FUnordEqual", "trii"},
	182: {"FOrdNotEqual", "trii"},
	183: {"FUnordNotEqual", "trii"},
	184: {"FOrdLessThan", "trii"},
	185: {"FUnordLessThan", "trii"},
	186: {"FOrdGreaterThan", "trii"},
	187: {"FUnordGreaterThan", "trii"},
	188: {"FOrdLessThanEqual", "trii"},
	189: {"FUnordLessThanEqual", "trii"},
	190: {"FOrdGreaterThanEqual", "trii"},
	191: {"FUnordGreaterThanEqual", "trii"},
	194: {"ShiftRightLogical", "trii"},
	195: {"ShiftRightArithmetic", "trii"},
	196: {"ShiftLeftLogical", "trii"},
	197: {"BitwiseOr", "trii"},
	198: {"BitwiseXor", "trii"},
	199: {"BitwiseAnd", "trii"},
	200: {"Not", "tri"},
	201: {"BitFieldInsert", "triiii"},
	202: {"BitFieldSExtract", "triii"},
	203: {"BitFieldUExtract", "triii"},
	204: {"BitReverse", "tri"},
	205: {"BitCount", "tri"},
	207: {"DPdx", "tri"},
	208: {"DPdy", "tri"},
	209: {"Fwidth", "tri"},
	210: {"DPdxFine", "tri"},
	211: {"DPdyFine", "tri"},
	212: {"FwidthFine", "tri"},
	213: {"DPdxCoarse", "tri"},
	214: {"DPdyCoarse", "tri"},
	215: {"FwidthCoarse", "tri"},
	218: {"EmitVertex", ""},
	219: {"EndPrimitive", ""},
	220: {"EmitStreamVertex", "i"},
	221: {"EndStreamPrimitive", "i"},
	224: {"ControlBarrier", "iii"},
	225: {"MemoryBarrier", "ii"},
	227: {"AtomicLoad", "triii"},
	228: {"AtomicStore", "iiii"},
	229: {"AtomicExchange", "triiii"},
	230: {"AtomicCompareExchange", "triiiiii"},
	231: {"AtomicCompareExchangeWeak", "triiiiii"},
	232: {"AtomicIIncrement", "triii"},
	233: {"AtomicIDecrement", "triii"},
	234: {"AtomicIAdd", "triiii"},
	235: {"AtomicISub", "triiii"},
	236: {"AtomicSMin", "triiii"},
	237: {"AtomicUMin", "triiii"},
	238: {"AtomicSMax", "triiii"},
	239: {"AtomicUMax", "triiii"},
	240: {"AtomicAnd", "triiii"},
	241: {"AtomicOr", "triiii"},
	242: {"AtomicXor", "triiii"},
	245: {"Phi", "tri*"},
	246: {"LoopMerge", "iil*"},
	247: {"SelectionMerge", "il"},
	248: {"Label", "r"},
	249: {"Branch", "i"},
	250: {"BranchConditional", "iiil*"},
	251: {"Switch", "iil*"},
	252: {"Kill", ""},
	253: {"Return", ""},
	254: {"ReturnValue", "i"},
	255: {"Unreachable", ""},
	256: {"LifetimeStart", "il"},
	257: {"LifetimeStop", "il"},
	317: {"NoLine", ""},
	330: {"ModuleProcessed", "s"},
}
