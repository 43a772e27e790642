package dto

// Huruf nilai dihitung dari skor di sisi tampilan; backend hanya
// menyimpan skor mentah. Batas: 85/75/65/50.
func CalculateGrade(score int) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 75:
		return "B"
	case score >= 65:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "E"
	}
}

// Pemetaan tertutup nilai → kelas warna (bukan dynamic dispatch).
var gradeColors = map[string]string{
	"A": "grade-green",
	"B": "grade-blue",
	"C": "grade-yellow",
	"D": "grade-orange",
	"E": "grade-red",
}

func GradeColor(grade string) string {
	if color, ok := gradeColors[grade]; ok {
		return color
	}
	return "grade-gray"
}

// Lulus bila minimal C; di bawah itu remedial.
func PassStatus(grade string) string {
	if grade == "A" || grade == "B" || grade == "C" {
		return "Lulus"
	}
	return "Remedial"
}

// Status enrollment → kelas warna.
var statusColors = map[string]string{
	"Not Enrolled": "status-gray",
	"accepted":     "status-green",
}

func StatusColor(status string) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return "status-gray"
}
