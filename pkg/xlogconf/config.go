package xlogconf

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// 输出类型。
const (
	// OutputConsole 写 os.Stderr（缺省）。
	OutputConsole = "console"

	// OutputFile lumberjack 轮转文件。
	OutputFile = "file"

	// OutputDiscard 丢弃一切输出。
	OutputDiscard = "discard"
)

// Config 日志实例配置。
//
// 零值可用：console 输出、Debug 阈值、缺省行模板。
type Config struct {
	// Level 阈值名称（debug/info/warn/error/fatal），空串为 debug。
	Level string `koanf:"level"`

	// Pattern 行模板，空串为 xformat.DefaultPattern。
	Pattern string `koanf:"pattern"`

	// DateLayout %date 的时间戳格式，空串为 xformat.DefaultDateLayout。
	DateLayout string `koanf:"date_layout"`

	// Output 输出类型：console（缺省）/file/discard。
	Output string `koanf:"output"`

	// File 文件输出配置，仅 Output 为 file 时生效。
	File FileConfig `koanf:"file"`
}

// FileConfig 文件输出配置。
//
// 数值字段的 0 表示使用 xappend 的缺省值；显式关闭某一清理维度
// 需要直接使用 xappend 的选项接口构建。
type FileConfig struct {
	// Path 日志文件路径（output 为 file 时必填）。
	Path string `koanf:"path"`

	// MaxSizeMB 单个日志文件最大大小（MB）。
	MaxSizeMB int `koanf:"max_size_mb"`

	// MaxBackups 保留的备份文件数量。
	MaxBackups int `koanf:"max_backups"`

	// MaxAgeDays 保留备份的天数。
	MaxAgeDays int `koanf:"max_age_days"`

	// Compress 是否压缩备份（nil 时使用缺省值 true）。
	Compress *bool `koanf:"compress"`

	// LocalTime 备份文件名是否使用本地时间。
	LocalTime bool `koanf:"local_time"`
}
