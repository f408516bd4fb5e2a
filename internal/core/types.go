package core

// Match is one decoded search result: the task's fixed literal prefix
// followed by the sequential characters (the enumerated ones plus the
// solved final character). It does not include the caller's external
// prefix or suffix.
type Match struct {
	Literal    []byte
	Sequential []byte
}

func (m Match) String() string {
	return string(m.Literal) + string(m.Sequential)
}

// ConfigError reports a search configuration the engine cannot run.
type ConfigError struct {
	Msg string
}

func (e ConfigError) Error() string {
	return "invalid search configuration: " + e.Msg
}
