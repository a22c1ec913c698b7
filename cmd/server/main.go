package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pulseboard/pulseboard/server"
	"github.com/pulseboard/pulseboard/server/middlewares"
	"github.com/pulseboard/pulseboard/utils"
	"github.com/pulseboard/pulseboard/utils/dotenv"
	. "github.com/pulseboard/pulseboard/utils/flag"
	. "github.com/pulseboard/pulseboard/utils/log"
)

func main() {
	Parse()
	InitLogger()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	// Middlewares
	middlewares.Setup()

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to DB: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())

	api := router.Group("/api")
	authed := router.Group("/api")
	if !ByPassAuth {
		authed.Use(middlewares.JWT())
	}

	handler := server.NewHandler(db)
	handler.RegisterRoutes(api, authed)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	Log.Info("api server starts up")
	router.Run(":8080")
}
