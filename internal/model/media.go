package model

// MediaAsset 尚未上傳的媒體檔案
type MediaAsset struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadedMedia 已上傳的媒體，Position 對應原始順序
type UploadedMedia struct {
	URL      string `json:"url"`
	Position int    `json:"position"`
}
