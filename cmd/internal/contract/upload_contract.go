package contract

const MaxUploadSizeBytes = 10 * 1024 * 1024

var ValidUploadFileTypes = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".jpeg", ".jpg", ".png"}

type UploadResponse struct {
	URL      string `json:"url"`
	Path     string `json:"path"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}
