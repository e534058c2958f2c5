package bootstrap_test

import (
	"testing"

	"github.com/hurricanemark/SchoolApp.mongo.API/bootstrap"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// No .env file exists in this package directory, so everything has to
// come from defaults and the process environment.
func TestNewEnv_SecretFromProcessEnvironment(t *testing.T) {
	viper.Reset()
	t.Setenv("ACCESS_TOKEN_SECRET", "super-secret-from-env")

	env := bootstrap.NewEnv()

	assert.Equal(t, "super-secret-from-env", env.AccessTokenSecret)
}

func TestNewEnv_Defaults(t *testing.T) {
	viper.Reset()

	env := bootstrap.NewEnv()

	assert.Equal(t, ":8080", env.ServerAddress)
	assert.Equal(t, 10, env.ContextTimeout)
	assert.Equal(t, "playlists", env.PlaylistCollection)
	assert.Equal(t, 2, env.AccessTokenExpiryHour)
}

func TestNewEnv_EnvironmentOverridesDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("DB_NAME", "otherdb")

	env := bootstrap.NewEnv()

	assert.Equal(t, "otherdb", env.DBName)
}
