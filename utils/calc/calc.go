package calc

func Abs(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}

// AbsError 绝对误差
func AbsError(approx, exact float64) float64 {
	return Abs(approx - exact)
}

// RelativeError 相对误差，精确值为 0 时返回绝对误差
func RelativeError(approx, exact float64) float64 {
	if exact == 0 {
		return AbsError(approx, exact)
	}
	return Abs((approx - exact) / exact)
}
