package parser

import (
	"github.com/xuri/excelize/v2"
	"github.com/xuri/nfp"
)

// builtInNumFmt maps the built-in numFmtId values used for type inference to
// their canonical format strings (ECMA-376 §18.8.30). Only the IDs that can
// influence date detection or that commonly appear on literal cells are
// carried; custom IDs (>= 164) always come with their own format string.
var builtInNumFmt = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mm:ss.0",
	49: "@",
}

// IsDateFormat reports whether a number format code contains date or time
// tokens, using the nfp token stream.
func IsDateFormat(code string) bool {
	if code == "" || code == "General" {
		return false
	}
	ps := nfp.NumberFormatParser()
	for _, section := range ps.Parse(code) {
		for _, token := range section.Items {
			switch token.TType {
			case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
				return true
			}
		}
	}
	return false
}

// styleFormats memoizes styleID → number format code lookups for one open
// workbook, since sheets reuse a handful of styles across thousands of cells.
type styleFormats struct {
	f    *excelize.File
	memo map[int]string
}

func newStyleFormats(f *excelize.File) *styleFormats {
	return &styleFormats{f: f, memo: make(map[int]string)}
}

// code resolves the effective number format code for a style: the custom
// format string when present, the built-in code otherwise.
func (s *styleFormats) code(styleID int) string {
	if code, ok := s.memo[styleID]; ok {
		return code
	}
	code := ""
	if style, err := s.f.GetStyle(styleID); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			code = *style.CustomNumFmt
		} else if builtin, ok := builtInNumFmt[style.NumFmt]; ok {
			code = builtin
		}
	}
	s.memo[styleID] = code
	return code
}
