package constants

type FunctionName string

var (
	FunctionCube   FunctionName = "cube"
	FunctionSquare FunctionName = "square"
	FunctionLinear FunctionName = "linear"
	FunctionSin    FunctionName = "sin"
	FunctionCos    FunctionName = "cos"
	FunctionExp    FunctionName = "exp"
)
