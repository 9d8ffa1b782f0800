package employee

import "github.com/warp/employee-portal/sheets"

// Header keywords, Arabic first. Matching is substring based, so a short
// keyword like "ID" also matches "Employee ID".

var (
	adminIDKeywords = []string{"الرقم الوظيفي", "ID"}

	sheetIDKeywords = []string{"الرقم الوظيفي", "ID", "Employee ID", "رقم الموظف"}

	netSalaryKeywords = []string{"صافي الراتب", "Net Salary", "الصافي", "المبلغ الصافي"}

	salaryDateKeywords = []string{"التاريخ", "Date", "Time", "الشهر", "السنة"}

	// amountPriority is resolved with FindByPriority: earlier entries win
	// regardless of column position.
	amountPriority = []string{"مبلغ", "قيمة", "إجمالي", "مكافأة", "إيفاد", "ساعات إضافية", "القيمة", "الإضافي"}

	transactionNameKeywords = []string{
		"اسم", "عنوان", "السبب", "نوع", "البيان", "تفاصيل", "ملاحظات",
		"Name", "Title", "Reason", "Details", "Note",
	}

	transactionDateKeywords = []string{
		"تاريخ", "Date", "date", "وقت", "شهر", "سنة", "عام", "Year", "Month", "time",
	}

	nameKeywords = []string{"الاسم", "اسم الموظف", "Name"}
	jobKeywords  = []string{"العنوان الوظيفي", "الوظيفة", "Job"}
)

// profileField describes how one Profile attribute is located: keyword
// match first, then a fixed position, then a default.
type profileField struct {
	keywords []string
	position sheets.ColumnIndex
	fallback string
	set      func(*Profile, string)
}

// Column 15 is intentionally skipped; the published layout keeps a
// spacer column between rollover and the leave balances.
var profileFields = []profileField{
	{nameKeywords, 1, "", func(p *Profile, v string) { p.Name = v }},
	{[]string{"التحصيل", "الشهادة", "Education"}, 2, "", func(p *Profile, v string) { p.Education = v }},
	{jobKeywords, 3, "", func(p *Profile, v string) { p.Job, p.JobTitle = v, v }},
	{[]string{"الدرجة", "Grade"}, 4, "", func(p *Profile, v string) { p.Grade = v }},
	{[]string{"المرحلة", "Stage"}, 5, "", func(p *Profile, v string) { p.Stage = v }},
	{[]string{"الراتب الاسمي", "الراتب", "Salary"}, 6, "", func(p *Profile, v string) { p.Salary = v }},
	{[]string{"تاريخ العلاوة", "تاريخ الترفيع", "Promotion Date"}, 7, "", func(p *Profile, v string) { p.PromotionDate = v }},
	{[]string{"اخر مكافأة", "المكافأة", "Last Bonus"}, 8, "", func(p *Profile, v string) { p.LastBonus = v }},
	{[]string{"الاستحقاق السابق", "Due Pre"}, 9, "", func(p *Profile, v string) { p.DuePrevious = v }},
	{[]string{"كتب الشكر", "الشكر", "Thanks"}, 10, "", func(p *Profile, v string) { p.Thanks = v }},
	{[]string{"الاستحقاق القادم", "Due Post"}, 11, "", func(p *Profile, v string) { p.DueNext = v }},
	{[]string{"تاريخ المباشرة", "تاريخ التعيين", "Join Date"}, 12, "", func(p *Profile, v string) { p.JoinDate = v }},
	{[]string{"حالة الترفيع", "Promotion Status"}, 13, "", func(p *Profile, v string) { p.PromotionStatus = v }},
	{[]string{"المدور", "Rollover"}, 14, "", func(p *Profile, v string) { p.Rollover = v }},
	{[]string{"الاجازات الاعتيادية", "الاعتيادية", "Annual Leave"}, 16, "0", func(p *Profile, v string) { p.AnnualLeave = v }},
	{[]string{"الاجازات المرضية", "المرضية", "Sick Leave"}, 17, "0", func(p *Profile, v string) { p.SickLeave = v }},
}
