package config

import "time"

// Expo hosted push gateway
const EXPO_PUSH_URL = "https://exp.host/--/api/v2/push/send"

// Key the installation's push token is stored under
const PUSH_TOKEN_KEY = "pushtoken"

// Prefix for all redis keys
const REDIS_KEY_PREFIX = "surveypush"

// The follow-up reminder fires this long after the primary one
const FOLLOW_UP_OFFSET = 3 * time.Hour

// next_occurrence walks forward a day at a time, older dates are rejected
const MAX_OCCURRENCE_AGE_DAYS = 366

// Outbound push gateway requests give up after this long
const PUSH_HTTP_TIMEOUT = 10 * time.Second

const SURVEY_TITLE = "VapeAware Optional Survey"
const SURVEY_BODY = "Its time to fill our your daily survey!"
const SURVEY_EXPIRY_BODY = "Your daily survey will expire in 1 hour!"

// Android notification channel applied on registration
const CHANNEL_ID = "default"
const CHANNEL_NAME = "default"
const CHANNEL_LIGHT_COLOR = "#FF231F7C"

var CHANNEL_VIBRATION_PATTERN = []int{0, 250, 250, 250}
