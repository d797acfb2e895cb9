package constants

// 配置项键名
const (
	KeySampleCount      = "sampler.sampleCount"
	KeyResolutionFactor = "sampler.resolutionFactor"
	KeyInterval         = "sampler.interval"
	KeyFunction         = "sampler.function"
	KeyMaxCapacity      = "sampler.maxCapacity"

	KeyReportHistogram = "report.histogram"
	KeyReportBins      = "report.bins"
	KeyReportProgress  = "report.progress"
	KeyReportDump      = "report.dump"

	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyLogStdout = "log.stdout"
	KeyLogPath   = "log.path"
	KeyLogFlag   = "log.flag"
	KeyLogSuffix = "log.suffix"
)

const (
	DefaultSampleCount      = 10
	DefaultResolutionFactor = 1
	DefaultFunction         = "cube"
	DefaultReportBins       = 15
)
