package service

// DriveImage represents one product image file found in the Drive folder
type DriveImage struct {
	FileID    string
	FileName  string
	StyleCode string // parsed from the filename, e.g. "AK-RTW-0042"
	Fabric    string // readable fabric name decoded from the style code
	Category  string // readable category name decoded from the style code
	ImageURL  string
}

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListProductImages(folderID string) ([]DriveImage, error)
	DownloadImage(fileID string) ([]byte, error)
}
