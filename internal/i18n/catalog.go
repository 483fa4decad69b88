package i18n

// Messages is the set of strings rendered around the chart.
type Messages struct {
	Title             string
	Subtitle          string
	PerformanceLabel  string
	FactorsLabel      string
	Average           string
	Highest           string
	Lowest            string
	Strong            string
	Moderate          string
	Weak              string
	DragHint          string
	AddFactor         string
	FactorPlaceholder string
	ExportFailed      string
	Price             string
	Quality           string
	Service           string
	Marketing         string
}

var catalogs = map[Language]Messages{
	English: {
		Title:             "Strategy Canvas",
		Subtitle:          "Interactive strategy visualization",
		PerformanceLabel:  "Performance Level",
		FactorsLabel:      "Competitive Factors",
		Average:           "Average",
		Highest:           "Highest",
		Lowest:            "Lowest",
		Strong:            "Strong (75-100%)",
		Moderate:          "Moderate (25-75%)",
		Weak:              "Weak (0-25%)",
		DragHint:          "Drag points to adjust values",
		AddFactor:         "Add a new factor",
		FactorPlaceholder: "Factor name...",
		ExportFailed:      "Failed to download the chart. Please try again.",
		Price:             "Price",
		Quality:           "Quality",
		Service:           "Service",
		Marketing:         "Marketing",
	},
	Arabic: {
		Title:             "شراع استراتيجية",
		Subtitle:          "تصور استراتيجي تفاعلي",
		PerformanceLabel:  "مستوى الأداء",
		FactorsLabel:      "العوامل التنافسية",
		Average:           "متوسط",
		Highest:           "الأعلى",
		Lowest:            "الأدنى",
		Strong:            "قوي (75-100%)",
		Moderate:          "متوسط (25-75%)",
		Weak:              "ضعيف (0-25%)",
		DragHint:          "اسحب النقاط لتعديل القيم",
		AddFactor:         "إضافة عامل جديد",
		FactorPlaceholder: "اسم العامل...",
		ExportFailed:      "فشل تنزيل المخطط. يرجى المحاولة مرة أخرى.",
		Price:             "السعر",
		Quality:           "الجودة",
		Service:           "الخدمة",
		Marketing:         "التسويق",
	},
}

// Catalog returns the messages for l, or for Default if l is unknown.
func Catalog(l Language) Messages {
	if m, ok := catalogs[l]; ok {
		return m
	}
	return catalogs[Default]
}
