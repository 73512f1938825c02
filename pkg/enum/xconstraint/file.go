package xconstraint

import "github.com/omeyang/xfake/pkg/enum/xenum"

var fileType = scalars("FileType",
	scalar("SOURCE", "source"),
	scalar("TEXT", "text"),
	scalar("DATA", "data"),
	scalar("AUDIO", "audio"),
	scalar("VIDEO", "video"),
	scalar("IMAGE", "image"),
	scalar("EXECUTABLE", "executable"),
	scalar("COMPRESSED", "compressed"),
)

var mimeType = scalars("MimeType",
	scalar("APPLICATION", "application"),
	scalar("AUDIO", "audio"),
	scalar("IMAGE", "image"),
	scalar("MESSAGE", "message"),
	scalar("TEXT", "text"),
	scalar("VIDEO", "video"),
)

var videoFile = scalars("VideoFile",
	scalar("MP4", "mp4"),
	scalar("MOV", "mov"),
)

var audioFile = scalars("AudioFile",
	scalar("MP3", "mp3"),
	scalar("AAC", "aac"),
)

var imageFile = scalars("ImageFile",
	scalar("JPG", "jpg"),
	scalar("PNG", "png"),
	scalar("GIF", "gif"),
)

var documentFile = scalars("DocumentFile",
	scalar("PDF", "pdf"),
	scalar("DOCX", "docx"),
	scalar("PPTX", "pptx"),
	scalar("XLSX", "xlsx"),
)

var compressedFile = scalars("CompressedFile",
	scalar("ZIP", "zip"),
	scalar("GZIP", "gz"),
)

// FileType 返回文件类型枚举。
func FileType() *xenum.Enumeration[string] { return fileType }

// MimeType 返回 MIME 顶级类型枚举。
func MimeType() *xenum.Enumeration[string] { return mimeType }

// VideoFile 返回视频文件格式枚举。
func VideoFile() *xenum.Enumeration[string] { return videoFile }

// AudioFile 返回音频文件格式枚举。
func AudioFile() *xenum.Enumeration[string] { return audioFile }

// ImageFile 返回图片文件格式枚举。
func ImageFile() *xenum.Enumeration[string] { return imageFile }

// DocumentFile 返回文档文件格式枚举。
func DocumentFile() *xenum.Enumeration[string] { return documentFile }

// CompressedFile 返回压缩文件格式枚举。GZIP 的值是扩展名 "gz"。
func CompressedFile() *xenum.Enumeration[string] { return compressedFile }
