package v1alpha1

func StringToReportFormat(s string) ReportFormat {
	switch s {
	case string(ReportFormatCsv):
		return ReportFormatCsv
	case string(ReportFormatHtml):
		return ReportFormatHtml
	case string(ReportFormatXlsx):
		return ReportFormatXlsx
	default:
		return ReportFormatText
	}
}

func StringToSurfaceKind(s string) (SurfaceKind, bool) {
	switch s {
	case string(SurfaceKindWalls):
		return SurfaceKindWalls, true
	case string(SurfaceKindDoors):
		return SurfaceKindDoors, true
	case string(SurfaceKindWindows):
		return SurfaceKindWindows, true
	default:
		return "", false
	}
}
