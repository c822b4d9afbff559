package api

// LoginResponse is returned by /auth/login.
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	User        *UserInfo `json:"user,omitempty"`
}

// UserInfo is the identity record cached client-side next to the token.
type UserInfo struct {
	ID            int64  `json:"id"`
	Phone         string `json:"phone"`
	RealName      string `json:"realName"`
	Role          string `json:"role,omitempty"`
	InstitutionID int64  `json:"institutionId,omitempty"`
	CampusID      int64  `json:"campusId,omitempty"`
}

// Student is one row of the student roster.
type Student struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Gender         string  `json:"gender,omitempty"`
	Age            int     `json:"age,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	CampusID       int64   `json:"campusId"`
	CampusName     string  `json:"campusName,omitempty"`
	CourseID       int64   `json:"courseId,omitempty"`
	CourseName     string  `json:"courseName,omitempty"`
	TotalHours     float64 `json:"totalHours,omitempty"`
	ConsumedHours  float64 `json:"consumedHours,omitempty"`
	RemainingHours float64 `json:"remainingHours,omitempty"`
	Status         string  `json:"status,omitempty"`
	EnrollDate     string  `json:"enrollDate,omitempty"`
}

// Course is one row of the course catalog.
type Course struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	TypeID        int64        `json:"typeId,omitempty"`
	TypeName      string       `json:"typeName,omitempty"`
	CampusID      int64        `json:"campusId"`
	CampusName    string       `json:"campusName,omitempty"`
	Coaches       []SimpleItem `json:"coaches,omitempty"`
	UnitHours     float64      `json:"unitHours,omitempty"`
	TotalHours    float64      `json:"totalHours,omitempty"`
	ConsumedHours float64      `json:"consumedHours,omitempty"`
	Price         float64      `json:"price,omitempty"`
	Status        string       `json:"status,omitempty"`
	Description   string       `json:"description,omitempty"`
}

// Coach is one row of the coach roster.
type Coach struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Gender         string  `json:"gender,omitempty"`
	Age            int     `json:"age,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	JobTitle       string  `json:"jobTitle,omitempty"`
	CampusID       int64   `json:"campusId"`
	CampusName     string  `json:"campusName,omitempty"`
	Status         string  `json:"status,omitempty"`
	BaseSalary     float64 `json:"baseSalary,omitempty"`
	SocialSecurity float64 `json:"socialInsurance,omitempty"`
	ClassFee       float64 `json:"classFee,omitempty"`
	HireDate       string  `json:"hireDate,omitempty"`
}

// Campus is one campus of the institution.
type Campus struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	ManagerName  string `json:"managerName,omitempty"`
	Status       string `json:"status,omitempty"`
	StudentCount int    `json:"studentCount,omitempty"`
	CoachCount   int    `json:"coachCount,omitempty"`
	CreatedTime  string `json:"createdTime,omitempty"`
}

// Institution is the top-level organization record.
type Institution struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	ManagerName string `json:"managerName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description,omitempty"`
	CampusCount int    `json:"campusCount,omitempty"`
}

// User is a system user account.
type User struct {
	ID          int64  `json:"id"`
	Phone       string `json:"phone"`
	RealName    string `json:"realName"`
	Role        string `json:"role,omitempty"`
	RoleName    string `json:"roleName,omitempty"`
	CampusID    int64  `json:"campusId,omitempty"`
	CampusName  string `json:"campusName,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatedTime string `json:"createdTime,omitempty"`
}

// ConstantItem is one system lookup value (course type, expense category,
// payment method and so on), keyed by Type.
type ConstantItem struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Name   string `json:"constantValue"`
	Key    string `json:"constantKey,omitempty"`
	Status string `json:"status,omitempty"`
	Sort   int    `json:"sort,omitempty"`
}

// ScheduleSlot is one fixed weekly schedule entry.
type ScheduleSlot struct {
	ID          int64  `json:"id"`
	StudentID   int64  `json:"studentId"`
	StudentName string `json:"studentName,omitempty"`
	CoachID     int64  `json:"coachId"`
	CoachName   string `json:"coachName,omitempty"`
	CourseID    int64  `json:"courseId"`
	CourseName  string `json:"courseName,omitempty"`
	CampusID    int64  `json:"campusId"`
	Weekday     string `json:"weekday"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// Payment is one payment record.
type Payment struct {
	ID              int64   `json:"id"`
	StudentID       int64   `json:"studentId"`
	StudentName     string  `json:"studentName,omitempty"`
	CourseID        int64   `json:"courseId"`
	CourseName      string  `json:"courseName,omitempty"`
	CampusID        int64   `json:"campusId"`
	Amount          float64 `json:"amount"`
	Hours           float64 `json:"courseHours,omitempty"`
	GiftHours       float64 `json:"giftHours,omitempty"`
	PayType         string  `json:"payType,omitempty"`
	PayMethod       string  `json:"payMethod,omitempty"`
	ValidUntil      string  `json:"validUntil,omitempty"`
	Remark          string  `json:"remark,omitempty"`
	TransactionDate string  `json:"transactionDate,omitempty"`
}

// AttendanceRecord is one check-in record.
type AttendanceRecord struct {
	ID          int64   `json:"id"`
	StudentID   int64   `json:"studentId"`
	StudentName string  `json:"studentName,omitempty"`
	CourseID    int64   `json:"courseId"`
	CourseName  string  `json:"courseName,omitempty"`
	CoachID     int64   `json:"coachId,omitempty"`
	CoachName   string  `json:"coachName,omitempty"`
	CampusID    int64   `json:"campusId"`
	Date        string  `json:"courseDate"`
	StartTime   string  `json:"startTime,omitempty"`
	EndTime     string  `json:"endTime,omitempty"`
	Hours       float64 `json:"hours,omitempty"`
	Type        string  `json:"type,omitempty"`
	Remark      string  `json:"remark,omitempty"`
}

// FinanceRecord is one income/expense ledger entry.
type FinanceRecord struct {
	ID           int64   `json:"id"`
	CampusID     int64   `json:"campusId"`
	CampusName   string  `json:"campusName,omitempty"`
	Type         string  `json:"type"` // INCOME or EXPEND
	Item         string  `json:"item"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"transactionDate"`
	CategoryID   int64   `json:"categoryId,omitempty"`
	CategoryName string  `json:"categoryName,omitempty"`
	Remark       string  `json:"remark,omitempty"`
}

// StatsSummary aggregates headline numbers for the statistics pages.
type StatsSummary struct {
	StudentTotal   int     `json:"studentTotal"`
	StudentNew     int     `json:"studentNew,omitempty"`
	StudentRenewed int     `json:"studentRenewed,omitempty"`
	CoachTotal     int     `json:"coachTotal,omitempty"`
	CourseTotal    int     `json:"courseTotal,omitempty"`
	LessonsTaught  int     `json:"lessonsTaught,omitempty"`
	Income         float64 `json:"income,omitempty"`
	Expense        float64 `json:"expense,omitempty"`
	Profit         float64 `json:"profit,omitempty"`
}

// DashboardSummary backs the home dashboard: today's numbers plus the
// current lesson schedule.
type DashboardSummary struct {
	TodayLessons   int            `json:"todayLessons"`
	TodayCheckins  int            `json:"todayCheckins"`
	TodayIncome    float64        `json:"todayIncome,omitempty"`
	ActiveStudents int            `json:"activeStudents,omitempty"`
	ActiveCoaches  int            `json:"activeCoaches,omitempty"`
	Schedule       []ScheduleSlot `json:"schedule,omitempty"`
}

// SimpleItem is the id/name pair returned by the *simple list* endpoints
// that feed selector widgets.
type SimpleItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BackupInfo describes one system backup archive.
type BackupInfo struct {
	ID          int64  `json:"id"`
	FileName    string `json:"fileName"`
	SizeBytes   int64  `json:"sizeBytes,omitempty"`
	CreatedTime string `json:"createdTime,omitempty"`
	Status      string `json:"status,omitempty"`
}
