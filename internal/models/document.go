package models

type UploadResponse struct {
	Filename   string `json:"filename"`
	FileType   string `json:"file_type"`
	ResumeText string `json:"resume_text"`
}

type ImportRequest struct {
	ObjectKey string `json:"object_key"`
}
