package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/internal/domain/profile"
	"portfolio-api/pkg/auth"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth          *AuthHandler
	Profile       *ProfileHandler
	Skill         *SkillHandler
	Tool          *ToolHandler
	Experience    *ExperienceHandler
	Education     *EducationHandler
	Training      *TrainingHandler
	Project       *ProjectHandler
	Certification *CertificationHandler
	Language      *LanguageHandler
	ProgLang      *ProgrammingLanguageHandler
	Social        *SocialNetworkHandler
	ContactInfo   *ContactInfoHandler
	Message       *MessageHandler
	CV            *CVHandler
}

// NewRouter mounts the public read surface under /api and the mutation
// surface under /api/admin behind JWT auth. Collection routes sit behind
// RequireProfile so every request resolves against the singleton profile.
func NewRouter(h Handlers, jwtSvc *auth.JWTService, profileRepo profile.Repository) *gin.Engine {
	router := gin.Default()

	authMiddleware := AuthMiddleware(jwtSvc)
	requireProfile := RequireProfile(profileRepo)

	api := router.Group("/api")
	{
		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

			public.GET("/profile", h.Profile.GetProfile)
			public.GET("/cv", h.CV.GetCompleteCV)
			public.GET("/cv/download", h.CV.DownloadCV)
			public.POST("/contact", h.Message.SubmitMessage)

			collections := public.Group("/")
			collections.Use(requireProfile)
			{
				collections.GET("/skills", h.Skill.ListSkills)
				collections.GET("/skills/grouped/by-category", h.Skill.SkillsGroupedByCategory)
				collections.GET("/skills/grouped/by-level", h.Skill.SkillsGroupedByLevel)
				collections.GET("/skills/stats/summary", h.Skill.SkillStats)
				collections.GET("/tools", h.Tool.ListTools)
				collections.GET("/tools/grouped/by-category", h.Tool.ToolsGroupedByCategory)
				collections.GET("/tools/stats/summary", h.Tool.ToolStats)
				collections.GET("/experiences", h.Experience.ListExperiences)
				collections.GET("/education", h.Education.ListEducation)
				collections.GET("/trainings", h.Training.ListTraining)
				collections.GET("/projects", h.Project.ListProjects)
				collections.GET("/certifications", h.Certification.ListCertifications)
				collections.GET("/languages", h.Language.ListLanguages)
				collections.GET("/programming-languages", h.ProgLang.ListProgrammingLanguages)
				collections.GET("/social-networks", h.Social.ListSocialNetworks)
				collections.GET("/social-networks/grouped/by-platform", h.Social.SocialNetworksGroupedByPlatform)
				collections.GET("/contact-info", h.ContactInfo.GetContactInfo)
			}
		}

		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", h.Auth.Login)

			private := admin.Group("/")
			private.Use(authMiddleware)
			{
				private.POST("/profile", h.Profile.CreateProfile)
				private.PUT("/profile", h.Profile.UpdateProfile)
				private.DELETE("/profile", h.Profile.DeleteProfile)
				private.PUT("/profile/avatar", h.Profile.UploadAvatar)

				messages := private.Group("/messages")
				{
					messages.GET("", h.Message.ListMessages)
					messages.GET("/recent", h.Message.RecentMessages)
					messages.GET("/stats", h.Message.GetStats)
					messages.GET("/:id", h.Message.GetMessage)
					messages.PATCH("/:id/read", h.Message.MarkAsRead)
					messages.PATCH("/:id/replied", h.Message.MarkAsReplied)
					messages.DELETE("/:id", h.Message.DeleteMessage)
				}

				owned := private.Group("/")
				owned.Use(requireProfile)
				{
					skills := owned.Group("/skills")
					{
						skills.POST("", h.Skill.CreateSkill)
						skills.GET("/:id", h.Skill.GetSkill)
						skills.PUT("/:id", h.Skill.UpdateSkill)
						skills.DELETE("/:id", h.Skill.DeleteSkill)
						skills.PATCH("/:id/reorder", h.Skill.ReorderSkill)
					}

					tools := owned.Group("/tools")
					{
						tools.POST("", h.Tool.CreateTool)
						tools.GET("/:id", h.Tool.GetTool)
						tools.PUT("/:id", h.Tool.UpdateTool)
						tools.DELETE("/:id", h.Tool.DeleteTool)
						tools.PATCH("/:id/reorder", h.Tool.ReorderTool)
					}

					experiences := owned.Group("/experiences")
					{
						experiences.POST("", h.Experience.CreateExperience)
						experiences.GET("/:id", h.Experience.GetExperience)
						experiences.PUT("/:id", h.Experience.UpdateExperience)
						experiences.DELETE("/:id", h.Experience.DeleteExperience)
						experiences.PATCH("/:id/reorder", h.Experience.ReorderExperience)
					}

					education := owned.Group("/education")
					{
						education.POST("", h.Education.CreateEducation)
						education.GET("/:id", h.Education.GetEducation)
						education.PUT("/:id", h.Education.UpdateEducation)
						education.DELETE("/:id", h.Education.DeleteEducation)
						education.PATCH("/:id/reorder", h.Education.ReorderEducation)
					}

					trainings := owned.Group("/trainings")
					{
						trainings.POST("", h.Training.CreateTraining)
						trainings.GET("/:id", h.Training.GetTraining)
						trainings.PUT("/:id", h.Training.UpdateTraining)
						trainings.DELETE("/:id", h.Training.DeleteTraining)
						trainings.PATCH("/:id/reorder", h.Training.ReorderTraining)
					}

					projects := owned.Group("/projects")
					{
						projects.POST("", h.Project.CreateProject)
						projects.GET("/:id", h.Project.GetProject)
						projects.PUT("/:id", h.Project.UpdateProject)
						projects.DELETE("/:id", h.Project.DeleteProject)
						projects.PATCH("/:id/reorder", h.Project.ReorderProject)
					}

					certifications := owned.Group("/certifications")
					{
						certifications.POST("", h.Certification.CreateCertification)
						certifications.GET("/:id", h.Certification.GetCertification)
						certifications.PUT("/:id", h.Certification.UpdateCertification)
						certifications.DELETE("/:id", h.Certification.DeleteCertification)
						certifications.PATCH("/:id/reorder", h.Certification.ReorderCertification)
					}

					languages := owned.Group("/languages")
					{
						languages.POST("", h.Language.CreateLanguage)
						languages.GET("/:id", h.Language.GetLanguage)
						languages.PUT("/:id", h.Language.UpdateLanguage)
						languages.DELETE("/:id", h.Language.DeleteLanguage)
						languages.PATCH("/:id/reorder", h.Language.ReorderLanguage)
					}

					progLangs := owned.Group("/programming-languages")
					{
						progLangs.POST("", h.ProgLang.CreateProgrammingLanguage)
						progLangs.GET("/:id", h.ProgLang.GetProgrammingLanguage)
						progLangs.PUT("/:id", h.ProgLang.UpdateProgrammingLanguage)
						progLangs.DELETE("/:id", h.ProgLang.DeleteProgrammingLanguage)
						progLangs.PATCH("/:id/reorder", h.ProgLang.ReorderProgrammingLanguage)
					}

					socials := owned.Group("/social-networks")
					{
						socials.POST("", h.Social.CreateSocialNetwork)
						socials.GET("/:id", h.Social.GetSocialNetwork)
						socials.PUT("/:id", h.Social.UpdateSocialNetwork)
						socials.DELETE("/:id", h.Social.DeleteSocialNetwork)
						socials.PATCH("/:id/reorder", h.Social.ReorderSocialNetwork)
					}

					contactInfo := owned.Group("/contact-info")
					{
						contactInfo.POST("", h.ContactInfo.CreateContactInfo)
						contactInfo.GET("", h.ContactInfo.GetContactInfo)
						contactInfo.PUT("", h.ContactInfo.UpdateContactInfo)
						contactInfo.DELETE("", h.ContactInfo.DeleteContactInfo)
					}
				}
			}
		}
	}

	return router
}
