package app

import (
	"competency_backend/docs"
	"competency_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		a.registerCompetencyRoutes(api, c)
		a.registerSkillRoutes(api, c)
		a.registerQuestionRoutes(api, c)
		a.registerUserRoutes(api, c)
	}
}

func (a *App) registerCompetencyRoutes(rg *gin.RouterGroup, c *controllers) {
	competencies := rg.Group("/competencies")
	{
		competencies.GET("", c.competency.List)
		competencies.POST("", c.competency.Add)

		// :id 下的数字参数路由与 /code/:code 的静态前缀可以共存
		competencies.GET("/:id", c.competency.GetByCode)
		competencies.GET("/:id/skills", c.skill.ListByCompetency)
		competencies.POST("/:id/skills", c.skill.Add)
		competencies.GET("/:id/questions", c.question.ListByCompetency)
		competencies.GET("/:id/users", c.ranking.ListUsersByCompetency)
		competencies.GET("/:id/statistics", c.analytics.CompetencyStatistics)

		competencies.GET("/code/:code/skills", c.skill.ListByCompetencyCode)
	}
}

func (a *App) registerSkillRoutes(rg *gin.RouterGroup, c *controllers) {
	skills := rg.Group("/skills")
	{
		skills.GET("/mmr-range", c.skill.ListByMMRRange)
		skills.GET("/:id/questions", c.question.ListBySkill)
	}
}

func (a *App) registerQuestionRoutes(rg *gin.RouterGroup, c *controllers) {
	questions := rg.Group("/questions")
	{
		questions.GET("", c.question.List)
		questions.POST("", c.question.Add)
		questions.GET("/type/:type", c.question.ListByType)
		questions.POST("/:id/skills/:skillId", c.question.LinkToSkill)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	users := rg.Group("/users")
	{
		users.GET("", c.user.List)
		users.POST("", c.user.Add)
		users.GET("/:id", c.user.GetByID)
		users.GET("/name/:name", c.user.GetByName)

		users.GET("/:id/attempts", c.attempt.ListByUser)
		users.POST("/:id/attempts", c.attempt.Record)
		users.GET("/:id/attempts/correct", c.attempt.ListCorrectByUser)
		users.GET("/:id/attempts/incorrect", c.attempt.ListIncorrectByUser)
		users.GET("/:id/questions/:questionId/attempts", c.attempt.ListByUserAndQuestion)

		users.GET("/:id/skill-rankings", c.ranking.ListByUser)
		users.GET("/:id/competencies/:competencyId/skill-ranking", c.ranking.Get)
		users.PUT("/:id/competencies/:competencyId/skill-ranking", c.ranking.Upsert)

		users.GET("/:id/progress-summary", c.analytics.UserProgressSummary)
	}
}
