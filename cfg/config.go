package cfg

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type FlightAPIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type Config struct {
	AppEnv          string
	AppPort         string
	FlightAPIConfig FlightAPIConfig
	SnowflakeNodeID int64
}

func Load() (*Config, error) {
	var errs []error

	err := godotenv.Load()
	if err != nil {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)
	flightAPIBaseURL := mustEnv("FLIGHT_API_BASE_URL", &errs)

	flightAPITimeout := mustEnv("FLIGHT_API_TIMEOUT_SECONDS", &errs)
	flightAPITimeoutInt, err := strconv.Atoi(flightAPITimeout)
	if err != nil {
		errs = append(errs, errors.New("conversion failed env: "+"FLIGHT_API_TIMEOUT_SECONDS"))
	}

	nodeID := mustEnv("SNOWFLAKE_NODE_ID", &errs)
	nodeIDInt, err := strconv.ParseInt(nodeID, 10, 64)
	if err != nil {
		errs = append(errs, errors.New("conversion failed env: "+"SNOWFLAKE_NODE_ID"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		FlightAPIConfig: FlightAPIConfig{
			BaseURL:        flightAPIBaseURL,
			TimeoutSeconds: flightAPITimeoutInt,
		},
		SnowflakeNodeID: nodeIDInt,
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}
