//go:build !android

package utils

// EnsureStorageDir 桌面和浏览器上无需处理，gdata 会自行创建设置目录
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 只有 Android 需要显式路径，其他平台返回空字符串
func GetStoragePath() string {
	return ""
}
