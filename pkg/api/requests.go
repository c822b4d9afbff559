package api

// PageParams is embedded by every list-style parameter struct.
type PageParams struct {
	PageNum  int `json:"pageNum"`
	PageSize int `json:"pageSize"`
}

// LoginRequest authenticates a user by phone number and password.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RegisterRequest creates an institution together with its manager account.
type RegisterRequest struct {
	InstitutionName string `json:"institutionName"`
	ManagerName     string `json:"managerName"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	Type            string `json:"type,omitempty"`
	Description     string `json:"description,omitempty"`
}

// StudentListParams filters the student roster. Optional filters are only
// serialized when set.
type StudentListParams struct {
	PageParams
	CampusID int64  `json:"campusId,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
	Status   string `json:"status,omitempty"`
	CourseID int64  `json:"courseId,omitempty"`
}

// StudentRequest is the create/update payload for a student.
type StudentRequest struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Gender   string `json:"gender,omitempty"`
	Age      int    `json:"age,omitempty"`
	Phone    string `json:"phone,omitempty"`
	CampusID int64  `json:"campusId"`
	CourseID int64  `json:"courseId,omitempty"`
	Remark   string `json:"remark,omitempty"`
}

// CourseListParams filters the course catalog.
type CourseListParams struct {
	PageParams
	CampusID int64  `json:"campusId,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
	Status   string `json:"status,omitempty"`
	TypeID   int64  `json:"typeId,omitempty"`
	CoachID  int64  `json:"coachId,omitempty"`
}

// CourseRequest is the create/update payload for a course.
type CourseRequest struct {
	ID          int64    `json:"id,omitempty"`
	Name        string   `json:"name"`
	TypeID      int64    `json:"typeId,omitempty"`
	CampusID    int64    `json:"campusId"`
	CoachIDs    []int64  `json:"coachIds,omitempty"`
	UnitHours   float64  `json:"unitHours,omitempty"`
	TotalHours  float64  `json:"totalHours,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Description string   `json:"description,omitempty"`
}

// CoachListParams filters the coach roster.
type CoachListParams struct {
	PageParams
	CampusID int64  `json:"campusId,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
	Status   string `json:"status,omitempty"`
	JobTitle string `json:"jobTitle,omitempty"`
}

// CoachRequest is the create/update payload for a coach, including the
// payroll fields.
type CoachRequest struct {
	ID             int64   `json:"id,omitempty"`
	Name           string  `json:"name"`
	Gender         string  `json:"gender,omitempty"`
	Age            int     `json:"age,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	JobTitle       string  `json:"jobTitle,omitempty"`
	CampusID       int64   `json:"campusId"`
	BaseSalary     float64 `json:"baseSalary,omitempty"`
	SocialSecurity float64 `json:"socialInsurance,omitempty"`
	ClassFee       float64 `json:"classFee,omitempty"`
	HireDate       string  `json:"hireDate,omitempty"`
}

// CampusListParams filters the campus list.
type CampusListParams struct {
	PageParams
	Keyword string `json:"keyword,omitempty"`
	Status  string `json:"status,omitempty"`
}

// CampusRequest is the create/update payload for a campus.
type CampusRequest struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ManagerName string `json:"managerName,omitempty"`
	Status      string `json:"status,omitempty"`
}

// UserListParams filters the system user list.
type UserListParams struct {
	PageParams
	CampusID int64  `json:"campusId,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
	Role     string `json:"role,omitempty"`
	Status   string `json:"status,omitempty"`
}

// UserRequest is the create/update payload for a system user.
type UserRequest struct {
	ID       int64  `json:"id,omitempty"`
	RealName string `json:"realName"`
	Phone    string `json:"phone"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	CampusID int64  `json:"campusId,omitempty"`
	Status   string `json:"status,omitempty"`
}

// ScheduleListParams filters fixed schedule slots.
type ScheduleListParams struct {
	PageParams
	CampusID  int64  `json:"campusId,omitempty"`
	CoachID   int64  `json:"coachId,omitempty"`
	StudentID int64  `json:"studentId,omitempty"`
	Weekday   string `json:"weekday,omitempty"`
}

// ScheduleRequest creates or moves a fixed schedule slot.
type ScheduleRequest struct {
	ID        int64  `json:"id,omitempty"`
	StudentID int64  `json:"studentId"`
	CoachID   int64  `json:"coachId"`
	CourseID  int64  `json:"courseId"`
	CampusID  int64  `json:"campusId"`
	Weekday   string `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// PaymentListParams filters payment records.
type PaymentListParams struct {
	PageParams
	CampusID  int64  `json:"campusId,omitempty"`
	StudentID int64  `json:"studentId,omitempty"`
	Keyword   string `json:"keyword,omitempty"`
	PayType   string `json:"payType,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// PaymentRequest records a payment (fee, renewal, refund).
type PaymentRequest struct {
	StudentID       int64   `json:"studentId"`
	CourseID        int64   `json:"courseId"`
	CampusID        int64   `json:"campusId"`
	Amount          float64 `json:"amount"`
	Hours           float64 `json:"courseHours,omitempty"`
	PayType         string  `json:"payType"`
	PayMethod       string  `json:"payMethod,omitempty"`
	GiftHours       float64 `json:"giftHours,omitempty"`
	ValidUntil      string  `json:"validUntil,omitempty"`
	Remark          string  `json:"remark,omitempty"`
	TransactionDate string  `json:"transactionDate,omitempty"`
}

// AttendanceListParams filters check-in records.
type AttendanceListParams struct {
	PageParams
	CampusID  int64  `json:"campusId,omitempty"`
	StudentID int64  `json:"studentId,omitempty"`
	CoachID   int64  `json:"coachId,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// CheckinRequest records a student check-in for a scheduled lesson.
type CheckinRequest struct {
	StudentID int64   `json:"studentId"`
	CourseID  int64   `json:"courseId"`
	CoachID   int64   `json:"coachId,omitempty"`
	CampusID  int64   `json:"campusId"`
	Date      string  `json:"courseDate"`
	StartTime string  `json:"startTime,omitempty"`
	EndTime   string  `json:"endTime,omitempty"`
	Hours     float64 `json:"hours,omitempty"`
	Type      string  `json:"type,omitempty"`
	Remark    string  `json:"remark,omitempty"`
}

// FinanceListParams filters the income/expense ledger.
type FinanceListParams struct {
	PageParams
	CampusID  int64  `json:"campusId,omitempty"`
	Type      string `json:"type,omitempty"` // INCOME or EXPEND
	Keyword   string `json:"keyword,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// FinanceRequest adds a ledger entry.
type FinanceRequest struct {
	CampusID   int64   `json:"campusId"`
	Type       string  `json:"type"` // INCOME or EXPEND
	Item       string  `json:"item"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"transactionDate"`
	CategoryID int64   `json:"categoryId,omitempty"`
	Remark     string  `json:"remark,omitempty"`
}

// StatsParams scopes the aggregate statistics endpoints.
type StatsParams struct {
	CampusID  int64  `json:"campusId,omitempty"`
	Type      string `json:"type,omitempty"` // WEEKLY, MONTHLY, QUARTERLY, YEARLY
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}
