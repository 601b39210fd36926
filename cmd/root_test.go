package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestBindFlags_Env(t *testing.T) {
	t.Setenv("GHR_TICK_RATE", "25")
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	c := &cobra.Command{Use: "test"}
	var rate, speed float64
	c.Flags().Float64Var(&rate, "tick-rate", 60, "")
	c.Flags().Float64Var(&speed, "speed", 1, "")
	bindFlags(c, v)

	assert.Equal(t, 25.0, rate)
	assert.Equal(t, 1.0, speed)
}

func TestBindFlags_ExplicitFlagWins(t *testing.T) {
	t.Setenv("GHR_TICK_RATE", "25")
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	c := &cobra.Command{Use: "test"}
	var rate float64
	c.Flags().Float64Var(&rate, "tick-rate", 60, "")
	assert.NoError(t, c.Flags().Set("tick-rate", "30"))
	bindFlags(c, v)

	assert.Equal(t, 30.0, rate)
}
