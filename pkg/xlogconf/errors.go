package xlogconf

import "errors"

// 配置加载与构建错误
var (
	// ErrEmptyPath 配置文件路径为空
	ErrEmptyPath = errors.New("xlogconf: config path is empty")

	// ErrUnsupportedFormat 不支持的配置格式（仅支持 YAML/JSON）
	ErrUnsupportedFormat = errors.New("xlogconf: unsupported config format")

	// ErrLoadFailed 配置文件读取失败
	ErrLoadFailed = errors.New("xlogconf: failed to load config")

	// ErrParseFailed 配置内容解析失败
	ErrParseFailed = errors.New("xlogconf: failed to parse config")

	// ErrUnmarshalFailed 配置反序列化失败
	ErrUnmarshalFailed = errors.New("xlogconf: failed to unmarshal config")

	// ErrInvalidOutput 未知的输出类型（仅支持 console/file/discard）
	ErrInvalidOutput = errors.New("xlogconf: invalid output type")

	// ErrNilLogger 监视器需要一个已构建的 Logger 实例
	ErrNilLogger = errors.New("xlogconf: nil logger")
)
