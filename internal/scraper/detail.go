package scraper

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/dtu-calendar/internal/course"
	"github.com/pfrederiksen/dtu-calendar/internal/schedule"
)

const (
	titleSelector       = ".ico-namnganhhoc span"
	infoRowSelector     = ".tb_coursedetail table tr"
	classHeaderSelector = ".calendar thead tr th"
	classRowSelector    = ".calendar tbody tr.lop"
)

// infoKeys translates the labels of the course summary table.
var infoKeys = map[string]string{
	"Mã môn":             "code",
	"Số ĐVHT":            "credits",
	"Loại ĐVHT":          "creditType",
	"Loại hình":          "courseType",
	"Học kỳ":             "semester",
	"Môn học tiên quyết": "prerequisite",
	"Môn học song hành":  "corequisite",
	"Mô tả môn học":      "description",
}

// Column headers of the class table.
const (
	colClassName          = "Tên lớp"
	colRegistrationCode   = "Mã đăng ký"
	colClassType          = "Loại hình"
	colRemainingSlots     = "Số chỗ Còn lại"
	colRegistrationPeriod = "Hạn đăng ký"
	colWeeks              = "Tuần học"
	colStudyHours         = "Giờ học"
	colRooms              = "Phòng"
	colLocation           = "Địa điểm"
	colLecturer           = "Giảng viên"
	colRegistrationStatus = "Tình trạng Đăng ký"
	colDeploymentStatus   = "Tình trạng Triển khai"
)

var leadingDash = regexp.MustCompile(`^[-–—]\s*`)

// ParseCourseDetail extracts the course summary and its class rows. now only
// feeds the placeholder study period of each class.
func ParseCourseDetail(doc *goquery.Document, now time.Time) *course.Detail {
	return &course.Detail{
		Info:    parseInfo(doc),
		Classes: parseClasses(doc, now),
	}
}

func parseInfo(doc *goquery.Document) course.Info {
	info := course.Info{
		"title": strings.TrimSpace(doc.Find(titleSelector).Text()),
	}

	doc.Find(infoRowSelector).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		info[infoKey(cellText(cells, 0))] = cellText(cells, 1)
	})

	return info
}

// infoKey strips the decoration around a summary label ("- Mã môn:") and
// translates it. Unknown labels are returned cleaned but untranslated.
func infoKey(raw string) string {
	key := strings.TrimSpace(raw)
	key = leadingDash.ReplaceAllString(key, "")
	key = strings.TrimSuffix(key, ":")
	key = label(key)

	if en, ok := infoKeys[key]; ok {
		return en
	}
	return key
}

// classHeaders returns the class table headers in column order.
func classHeaders(doc *goquery.Document) []string {
	headers := make([]string, 0)
	doc.Find(classHeaderSelector).Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, label(th.Text()))
	})
	return headers
}

func parseClasses(doc *goquery.Document, now time.Time) []course.ClassSchedule {
	headers := classHeaders(doc)
	classes := make([]course.ClassSchedule, 0)

	doc.Find(classRowSelector).Each(func(_ int, tr *goquery.Selection) {
		row := make(map[string]string)
		tr.Find("td").Each(func(i int, td *goquery.Selection) {
			key := fmt.Sprintf("col%d", i)
			if i < len(headers) && headers[i] != "" {
				key = headers[i]
			}
			row[key] = collapse(td.Text())
		})
		classes = append(classes, classFromRow(row, now))
	})

	return classes
}

func classFromRow(row map[string]string, now time.Time) course.ClassSchedule {
	class := course.ClassSchedule{
		CourseCode:         row[colClassName],
		RegistrationCode:   row[colRegistrationCode],
		ClassType:          row[colClassType],
		RemainingSlots:     row[colRemainingSlots],
		RegistrationPeriod: course.NewRegistrationPeriod(row[colRegistrationPeriod]),
		Weeks:              row[colWeeks],
		Rooms:              row[colRooms],
		Location:           row[colLocation],
		Lecturer:           row[colLecturer],
		RegistrationStatus: row[colRegistrationStatus],
		DeploymentStatus:   row[colDeploymentStatus],
		// TODO: replace with the real teaching period once the class page exposes one.
		StudyPeriod: course.PlaceholderStudyPeriod(now),
	}

	if raw := row[colStudyHours]; raw != "" {
		s := schedule.Parse(raw)
		class.Schedule = s.Times
		class.CanceledWeeks = s.CancelWeeks
	}

	return class
}
