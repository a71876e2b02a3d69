package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// 种子数据来源类型
const (
	StorageLocal = "local"
	StorageMinio = "minio"
)
