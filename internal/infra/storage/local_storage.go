package storage

import (
	"io"
	"os"
	"path/filepath"
)

// 商品画像をローカルディスクに保存する。
// 保存できたら配信用のURLパスを返す。
type LocalImageStorage struct {
	dir     string
	baseURL string
}

// DI
func NewLocalImageStorage(dir string, baseURL string) *LocalImageStorage {
	return &LocalImageStorage{dir: dir, baseURL: baseURL}
}

func (s *LocalImageStorage) Save(filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		//途中で失敗したら中途半端なファイルは残さない
		os.Remove(path)
		return "", err
	}

	return s.baseURL + "/" + filename, nil
}
