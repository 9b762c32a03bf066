package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecatalog/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, courseController *controllers.CourseController) {
	router.GET("/ping", courseController.Ping)

	courses := router.Group("/courses")
	{
		courses.GET("/", courseController.GetAllCourses)
		courses.POST("/", courseController.CreateCourse)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}
}
