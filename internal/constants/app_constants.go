package constants

const (
	// Default directories and files, relative to the working directory
	DefaultInputDir      = "resumes"
	DefaultOutputDir     = "output"
	DefaultSkillsCatalog = "data/skills_db.txt"
	DefaultOutputSuffix  = "_information.pdf"
	InputExtension       = ".pdf"

	// NotFound 字段未抽取到时在报告中显示的占位符
	NotFound = "Not found"

	// Extractor / NLP backends selectable from config
	ExtractorEino       = "eino"
	ExtractorLedongthuc = "ledongthuc"
	ExtractorTika       = "tika"
	NLPProse            = "prose"
	NLPDisplacy         = "displacy"
)

// Summary PDF layout, in PDF points with the origin at the bottom-left of a US-letter page.
const (
	ReportFontFamily = "Helvetica"
	ReportFontSize   = 11.0
	ReportMarginX    = 100.0
	ReportNameY      = 750.0
	ReportPhoneY     = 730.0
	ReportEmailY     = 710.0
	ReportSkillsY    = 690.0
	ReportLineStep   = 20.0

	// SkillsPerLine 每行最多显示的技能数
	SkillsPerLine      = 5
	SkillsLabel        = "Skills: "
	SkillsContinuation = "   "
	PhoneLabel         = "Mobile Number: "
	EmailLabel         = "Email: "
)
