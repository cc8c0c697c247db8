package cms

// Page is the envelope the platform API wraps every list response in.
type Page[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalCount int `json:"total_count"`
}

type Translation struct {
	LangCode    string `json:"lang_code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type UniversityTranslation struct {
	UniversityID int    `json:"university_id,omitempty"`
	LangCode     string `json:"lang_code"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Status       string `json:"status"`
}

type CreateUniversityRequest struct {
	Translations []UniversityTranslation `json:"translations"`
}

type University struct {
	ID           int                     `json:"id,omitempty"`
	Translations []UniversityTranslation `json:"translations"`
}

type Faculty struct {
	ID           int                  `json:"id"`
	UniversityID int                  `json:"university_id"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
	Translations []FacultyTranslation `json:"translations"`
}

type FacultyTranslation struct {
	FacultyID   int    `json:"faculty_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type Degree struct {
	ID           int           `json:"id"`
	Translations []Translation `json:"translations"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}

type CreateDegreeRequest struct {
	Translations []Translation `json:"translations"`
}

type UpdateDegreeTranslationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type Course struct {
	ID           int           `json:"id"`
	Number       int           `json:"number"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
	Translations []Translation `json:"translations"`
}

// Semester comes back with Go-default field names, the upstream serializes
// its gorm model without tags.
type Semester struct {
	ID        int    `json:"ID"`
	Number    int    `json:"Number"`
	CreatedAt string `json:"CreatedAt"`
	UpdatedAt string `json:"UpdatedAt"`
}

type Subject struct {
	ID           int           `json:"id"`
	SemesterID   int           `json:"semester_id"`
	CourseID     int           `json:"course_id"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
	Translations []Translation `json:"translations"`
}

type MaterialType struct {
	MaterialTypeID int    `json:"material_type_id"`
	LangCode       string `json:"lang_code"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Status         string `json:"status"`
}

type MaterialTranslation struct {
	LangCode    string   `json:"lang_code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Paths       []string `json:"paths"`
	Status      string   `json:"status"`
}

type Material struct {
	ID           int                   `json:"id"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
	Translations []MaterialTranslation `json:"translations"`
	Course       struct {
		ID     int `json:"id"`
		Number int `json:"number"`
	} `json:"course"`
	Semester struct {
		ID     int `json:"id"`
		Number int `json:"number"`
	} `json:"semester"`
	MaterialType struct {
		ID       int    `json:"id"`
		LangCode string `json:"lang_code"`
		Name     string `json:"name"`
	} `json:"material_type"`
}

type User struct {
	ID           int    `json:"id"`
	Login        string `json:"login"`
	CourseID     int    `json:"course_id"`
	SemesterID   int    `json:"semester_id"`
	UniversityID int    `json:"university_id"`
	FacultyID    int    `json:"faculty_id"`
	LangCode     string `json:"lang_code"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type SubscriptionStatus string

const (
	SubscriptionPending  SubscriptionStatus = "pending"
	SubscriptionAccepted SubscriptionStatus = "accepted"
	SubscriptionDenied   SubscriptionStatus = "denied"
)

type Subscription struct {
	ID          int                `json:"id"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	ProofPhoto  string             `json:"proof_photo"`
	Status      SubscriptionStatus `json:"status"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
	User        User               `json:"user"`
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}
