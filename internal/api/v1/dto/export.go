package dto

// ExportQuery represents query parameters for export requests
type ExportQuery struct {
	Format   string `form:"format" binding:"omitempty,oneof=json csv xlsx JSON CSV XLSX"`
	Filename string `form:"filename" binding:"omitempty,max=200"`
}
