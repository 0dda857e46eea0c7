package config

import (
	"testing"
	"time"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/salary"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_STRING", "nats://nats:4222")
	t.Setenv("TEST_INT", "25")
	t.Setenv("TEST_BAD_INT", "twenty")
	t.Setenv("TEST_FLOAT", "2080.5")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_LIST", " mercy-health, ,cleveland-clinic ")

	assert.Equal(t, "nats://nats:4222", GetEnvString("TEST_STRING", "x"))
	assert.Equal(t, "x", GetEnvString("TEST_UNSET", "x"))
	assert.Equal(t, 25, GetEnvInt("TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("TEST_BAD_INT", 1))
	assert.Equal(t, 2080.5, GetEnvFloat("TEST_FLOAT", 0))
	assert.True(t, GetEnvBool("TEST_BOOL", false))
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DURATION", time.Second))
	assert.Equal(t, []string{"mercy-health", "cleveland-clinic"}, GetEnvList("TEST_LIST", nil))
	assert.Equal(t, []string{"a"}, GetEnvList("TEST_UNSET", []string{"a"}))
}

func TestSalaryBounds(t *testing.T) {
	assert.Equal(t, salary.DefaultBounds(), SalaryBounds())

	t.Setenv("SALARY_HOURLY_MIN", "18")
	t.Setenv("SALARY_ANNUAL_MIN", "35000")
	b := SalaryBounds()
	assert.Equal(t, 18.0, b.MinHourlyRate)
	assert.Equal(t, 35000.0, b.MinAnnualSalary)
	assert.Equal(t, float64(salary.HoursPerYear), b.HoursPerYear)
}
