package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Mnour3593/C-Maze/api"
	api_i "github.com/Mnour3593/C-Maze/api/i"
	"github.com/Mnour3593/C-Maze/api/identity"
	mazeapi "github.com/Mnour3593/C-Maze/api/maze"
	scoreapi "github.com/Mnour3593/C-Maze/api/score"
	"github.com/Mnour3593/C-Maze/config"
	"github.com/Mnour3593/C-Maze/encoder/pb"
	"github.com/Mnour3593/C-Maze/infrastruture/mazecache"
	"github.com/Mnour3593/C-Maze/infrastruture/repo"
	"github.com/Mnour3593/C-Maze/infrastruture/sortedstorage"
	"github.com/Mnour3593/C-Maze/infrastruture/token"
	"github.com/Mnour3593/C-Maze/logger"
	"github.com/Mnour3593/C-Maze/maze"
	"github.com/Mnour3593/C-Maze/service"
	"github.com/Mnour3593/C-Maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	userRepo        *repo.UserRepo
	scoreRepo       *repo.ScoreRepo
	mazeGenerator   i.MazeGenerator
	scoreKeeper     i.ScoreKeeper
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	authController  api_i.Controller
	mazeController  api_i.Controller
	scoreController api_i.Controller
	router          *api.Router
	appLogger       i.Logger
)

func fatal(format string, args ...interface{}) {
	appLogger.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}

func newLogger(prefix, color string) i.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fatal("Creating %s logger: %v", prefix, err)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		fatal("Failed to connect to MongoDB: %v", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		fatal("MongoDB ping failed: %v", err)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fatal("Redis ping failed: %v", err)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(ctx context.Context) {
	userRepo = repo.NewUserRepo(mongoClient, config.Envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		fatal("Creating user indexes: %v", err)
	}
	scoreRepo = repo.NewScoreRepo(mongoClient, config.Envs.DBName, "scores")
	if err := scoreRepo.EnsureIndexes(ctx); err != nil {
		fatal("Creating score indexes: %v", err)
	}
	appLogger.Info("Repositories initialized")
}

func initMazeGenerator() {
	escalator, err := service.NewPolicyEscalator(config.Envs.MazeEscalationPolicy, config.Envs.MazeMaxEscalations)
	if err != nil {
		fatal("Creating escalator: %v", err)
	}

	generator, err := service.NewGenerator(&service.GeneratorConfig{
		Escalator:      escalator,
		Logger:         newLogger("GENERATOR", logger.ColorCyan),
		MaxAutoRetries: config.Envs.MazeMaxAutoRetries,
	})
	if err != nil {
		fatal("Creating maze generator: %v", err)
	}

	mazeGenerator, err = service.NewMazeService(&service.MazeServiceConfig{
		Generator: generator,
		Cache:     mazecache.NewRedisCache(redisClient, config.Envs.MazeCacheTTL),
		Encoder:   pb.Protobuf{},
		Logger:    newLogger("MAZE-CACHE", logger.ColorBlue),
	})
	if err != nil {
		fatal("Creating maze service: %v", err)
	}
	appLogger.Info("Maze generator initialized")
}

func initScoreKeeper() {
	board := sortedstorage.NewRedisLeaderboard(redisClient, config.Envs.LeaderboardSize)
	var err error
	scoreKeeper, err = service.NewScoreService(scoreRepo, board, newLogger("SCORES", logger.ColorPurple))
	if err != nil {
		fatal("Creating score service: %v", err)
	}
	appLogger.Info("Score service initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	authService = service.NewAuthService(userRepo, jwtTokenizer)
	appLogger.Info("Auth service initialized")
}

func initControllers() {
	defaultAlgorithm, err := maze.ParseAlgorithm(config.Envs.MazeDefaultAlgorithm)
	if err != nil {
		fatal("Parsing MAZE_DEFAULT_ALGORITHM: %v", err)
	}
	if err := maze.ValidateSize(config.Envs.MazeDefaultSize); err != nil {
		fatal("Parsing MAZE_DEFAULT_SIZE: %v", err)
	}

	authController = identity.NewIdentityServer(authService)
	mazeController = mazeapi.NewMazeController(mazeGenerator, config.Envs.MazeDefaultSize, defaultAlgorithm)
	scoreController = scoreapi.NewScoreController(scoreKeeper)
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController, scoreController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger, _ = logger.New("APP", logger.ColorGreen, os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRedis(ctx)
	defer redisClient.Close()

	initRepos(ctx)
	initMazeGenerator()
	initScoreKeeper()
	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		fatal("Starting server: %v", err)
	}
}
