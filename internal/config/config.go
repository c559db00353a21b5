package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Backend
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Media provider
	MediaCloudName string
	MediaAPIKey    string
	MediaUploadURL string

	// Upload presets, one per content type
	PresetCourseThumbnail    string
	PresetArticleThumbnail   string
	PresetArticleInlineImage string
	PresetProfilePicture     string
	PresetExerciseAttachment string

	// Image compression
	MaxThumbnailEdge int

	// Runtime
	Environment string
	LogLevel    string
}

func New() *Config {
	c := &Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:4000/api/v1"),
		HTTPTimeout: time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,

		MediaCloudName: getEnv("MEDIA_CLOUD_NAME", ""),
		MediaAPIKey:    getEnv("MEDIA_API_KEY", ""),

		PresetCourseThumbnail:    getEnv("UPLOAD_PRESET_COURSE_THUMBNAIL", "course-thumbnail"),
		PresetArticleThumbnail:   getEnv("UPLOAD_PRESET_ARTICLE_THUMBNAIL", "article-thumbnail"),
		PresetArticleInlineImage: getEnv("UPLOAD_PRESET_ARTICLE_INLINE", "article-inline"),
		PresetProfilePicture:     getEnv("UPLOAD_PRESET_PROFILE", "profile-picture"),
		PresetExerciseAttachment: getEnv("UPLOAD_PRESET_EXERCISE", "exercise-attachment"),

		MaxThumbnailEdge: getEnvAsInt("MAX_THUMBNAIL_EDGE", 1280),

		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	c.MediaUploadURL = getEnv(
		"MEDIA_UPLOAD_URL",
		"https://api.media.example.com/v1/"+c.MediaCloudName+"/auto/upload",
	)

	return c
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.ToLower(getEnv(key, ""))
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1" || valueStr == "yes"
}
