package dto

// DashboardResponse summarizes the registry
type DashboardResponse struct {
	Courses           int `json:"courses" example:"2"`
	Sections          int `json:"sections" example:"3"`
	Students          int `json:"students" example:"10"`
	Professors        int `json:"professors" example:"1"`
	Enrollments       int `json:"enrollments" example:"14"`
	TotalCapacity     int `json:"totalCapacity" example:"80"`
	AvailableSeats    int `json:"availableSeats" example:"66"`
	GradedCourses     int `json:"gradedCourses" example:"5"`
	UnstaffedSections int `json:"unstaffedSections" example:"0"`
}

// CourseStatsResponse aggregates the sections of one course
type CourseStatsResponse struct {
	CourseNo          string  `json:"courseNo" example:"CS101"`
	Name              string  `json:"name" example:"Functional Programming"`
	Credits           int     `json:"credits" example:"4"`
	PrerequisiteCount int     `json:"prerequisiteCount" example:"0"`
	SectionCount      int     `json:"sectionCount" example:"1"`
	TotalCapacity     int     `json:"totalCapacity" example:"30"`
	TotalEnrolled     int     `json:"totalEnrolled" example:"12"`
	Utilization       float64 `json:"utilization" example:"40"`
}
