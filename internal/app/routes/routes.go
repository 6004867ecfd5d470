package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/registrar/internal/app/controllers"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	sectionController *controllers.SectionController,
	studentController *controllers.StudentController,
	professorController *controllers.ProfessorController,
	reportController *controllers.ReportController,
	eventController *controllers.EventController,
) {
	validation.RegisterBinding()

	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", reportController.Health)

	// Course catalog
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.POST("", courseController.CreateCourse)
		courses.GET("/:courseNo", courseController.GetCourse)
		courses.DELETE("/:courseNo", courseController.DeleteCourse)
		courses.POST("/:courseNo/prerequisites", courseController.AddPrerequisite)
		courses.DELETE("/:courseNo/prerequisites/:prerequisiteNo", courseController.RemovePrerequisite)
		courses.POST("/:courseNo/sections", courseController.ScheduleSection)
	}

	// Sections, instructor assignment, enrollment and grading
	sections := v1.Group("/sections")
	{
		sections.GET("", sectionController.ListSections)
		sections.GET("/:sectionNo", sectionController.GetSection)
		sections.DELETE("/:sectionNo", sectionController.DeleteSection)
		sections.PUT("/:sectionNo/professor", sectionController.AssignProfessor)
		sections.POST("/:sectionNo/enrollments", sectionController.Enroll)
		sections.DELETE("/:sectionNo/enrollments/:ssn", sectionController.Drop)
		sections.PUT("/:sectionNo/grades/:ssn", sectionController.PostGrade)
	}

	students := v1.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/:ssn", studentController.GetStudent)
		students.PUT("/:ssn", studentController.UpdateStudent)
		students.DELETE("/:ssn", studentController.DeleteStudent)
		students.GET("/:ssn/transcript", studentController.GetTranscript)
	}

	professors := v1.Group("/professors")
	{
		professors.GET("", professorController.ListProfessors)
		professors.POST("", professorController.CreateProfessor)
		professors.GET("/:ssn", professorController.GetProfessor)
		professors.PUT("/:ssn", professorController.UpdateProfessor)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/dashboard", reportController.Dashboard)
		reports.GET("/courses", reportController.CourseStatistics)
		reports.GET("/sections", reportController.SectionRosters)
	}

	// Live event feed
	v1.GET("/events/ws", eventController.Stream)
}
