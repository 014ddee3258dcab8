package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/IsuruSandaruwan97/react-score-dashboard/docs"
	v1 "github.com/IsuruSandaruwan97/react-score-dashboard/internal/api/handler/v1"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/api/middleware"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/config"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository/dao"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	handlers := s.initHandlers(db)
	s.MountHandlers(handlers)

	return s
}

type handlers struct {
	auth        *v1.AuthHandler
	player      *v1.PlayerHandler
	judge       *v1.JudgeHandler
	criterion   *v1.CriterionHandler
	score       *v1.ScoreHandler
	results     *v1.ResultsHandler
	settings    *v1.SettingsHandler
	round       *v1.RoundHandler
	admin       *v1.AdminHandler
	competition *v1.CompetitionHandler
}

func (s *Server) initHandlers(db *gorm.DB) handlers {
	playerRepo := repository.NewPlayerRepository(dao.NewPlayerDAO(db))
	judgeRepo := repository.NewJudgeRepository(dao.NewJudgeDAO(db))
	criterionRepo := repository.NewCriterionRepository(dao.NewCriterionDAO(db))
	scoreRepo := repository.NewScoreRepository(dao.NewScoreDAO(db))
	settingsRepo := repository.NewSettingsRepository(dao.NewSettingDAO(db))
	roundRepo := repository.NewRoundRepository(dao.NewRoundDAO(db))
	adminRepo := repository.NewAdminRepository(dao.NewAdminDAO(db))
	competitionRepo := repository.NewCompetitionRepository(dao.NewCompetitionDAO(db))

	return handlers{
		auth:      v1.NewAuthHandler(s.Config.API, service.NewAuthService(adminRepo)),
		player:    v1.NewPlayerHandler(service.NewPlayerService(playerRepo, scoreRepo)),
		judge:     v1.NewJudgeHandler(service.NewJudgeService(judgeRepo)),
		criterion: v1.NewCriterionHandler(service.NewCriterionService(criterionRepo)),
		score: v1.NewScoreHandler(service.NewScoringService(
			scoreRepo, criterionRepo, playerRepo, judgeRepo, settingsRepo,
		)),
		results:     v1.NewResultsHandler(service.NewResultsService(scoreRepo, playerRepo, settingsRepo)),
		settings:    v1.NewSettingsHandler(service.NewSettingsService(settingsRepo)),
		round:       v1.NewRoundHandler(service.NewRoundService(roundRepo)),
		admin:       v1.NewAdminHandler(service.NewAdminService(adminRepo)),
		competition: v1.NewCompetitionHandler(service.NewCompetitionService(competitionRepo, playerRepo, roundRepo)),
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.Metrics())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	// The public site reads rosters, judges, criteria, the schedule and the
	// published leaderboard without authentication.
	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", h.auth.HandleLogin)
		public.GET("/players", h.player.HandleListPlayers)
		public.GET("/players/:playerID", h.player.HandleGetPlayer)
		public.GET("/judges", h.judge.HandleListJudges)
		public.GET("/criteria", h.criterion.HandleListCriteria)
		public.GET("/rounds", h.round.HandleListRounds)
		public.GET("/settings", h.settings.HandleGetSettings)
		public.GET("/results", h.results.HandleGetResults)
		public.GET("/competition", h.competition.HandleGetCompetition)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.POST("/auth/change-password", h.auth.HandleChangePassword)

		admin.POST("/players", h.player.HandleCreatePlayer)
		admin.PUT("/players/:playerID", h.player.HandleUpdatePlayer)
		admin.DELETE("/players/:playerID", h.player.HandleDeletePlayer)
		admin.POST("/players/upload", h.player.HandleUploadRoster)

		admin.POST("/judges", h.judge.HandleCreateJudge)
		admin.PUT("/judges/:judgeID", h.judge.HandleUpdateJudge)
		admin.DELETE("/judges/:judgeID", h.judge.HandleDeleteJudge)

		admin.POST("/criteria", h.criterion.HandleCreateCriterion)
		admin.PUT("/criteria/:criterionID", h.criterion.HandleUpdateCriterion)
		admin.DELETE("/criteria/:criterionID", h.criterion.HandleDeleteCriterion)
		admin.POST("/criteria/reorder", h.criterion.HandleReorderCriteria)

		admin.GET("/scores", h.score.HandleGetScores)
		admin.POST("/scores", h.score.HandleSubmitScores)
		admin.POST("/scores/player", h.score.HandleSavePlayerSheet)

		admin.GET("/results/standings", h.results.HandleGetRoundStandings)

		admin.PUT("/settings", h.settings.HandleUpdateSettings)
		admin.POST("/settings/finals/enable", h.settings.HandleEnableFinals)
		admin.POST("/settings/finals/disable", h.settings.HandleDisableFinals)

		admin.PUT("/competition", h.competition.HandleUpdateCompetition)

		admin.POST("/rounds", h.round.HandleCreateRound)
		admin.PUT("/rounds/:roundID", h.round.HandleUpdateRound)
		admin.DELETE("/rounds/:roundID", h.round.HandleDeleteRound)

		admin.GET("/admins", h.admin.HandleListAdmins)
		admin.POST("/admins", h.admin.HandleCreateAdmin)
		admin.PUT("/admins/:adminID", h.admin.HandleUpdateAdmin)
		admin.DELETE("/admins/:adminID", h.admin.HandleDeleteAdmin)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Competition Score Dashboard API"
	docs.SwaggerInfo.Description = "Scoring, rosters and public results for a building competition."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
