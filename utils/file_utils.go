package utils

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/image/webp"
)

// SaveUploadedImage 校验并保存上传的图片到media目录
// 返回相对media目录的路径
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader, mediaDir, subDir string) (string, error) {
	if err := ValidateImage(file); err != nil {
		return "", err
	}

	// 生成唯一文件名
	uniqueFilename := GenerateUniqueFilename(file.Filename)
	relPath := filepath.Join(subDir, uniqueFilename)

	// 确保目录存在
	fullDir := filepath.Join(mediaDir, subDir)
	if err := os.MkdirAll(fullDir, 0755); err != nil {
		return "", fmt.Errorf("创建目录失败: %v", err)
	}

	if err := c.SaveUploadedFile(file, filepath.Join(mediaDir, relPath)); err != nil {
		return "", fmt.Errorf("保存文件失败: %v", err)
	}
	return relPath, nil
}

// ValidateImage 校验上传文件是可解码的图片（png/jpeg/gif/webp）
func ValidateImage(file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("打开上传文件失败: %v", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == ".webp" {
		if _, err := webp.Decode(src); err != nil {
			return fmt.Errorf("无效的webp图片: %v", err)
		}
		return nil
	}

	if _, _, err := image.Decode(src); err != nil {
		return fmt.Errorf("无效的图片文件: %v", err)
	}
	return nil
}

// DeleteMediaFile 删除media目录下的文件，文件不存在时不报错
func DeleteMediaFile(mediaDir, relPath string) error {
	if relPath == "" {
		return nil
	}
	fullPath := filepath.Join(mediaDir, relPath)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除文件失败: %v", err)
	}
	return nil
}
