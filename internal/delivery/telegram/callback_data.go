package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz     = "quiz"
	actionSettings = "settings"
	actionReset    = "reset"
	actionStats    = "stats"
)

// Quiz sub-actions.
const (
	quizStart   = "start"
	quizSelect  = "select"
	quizCheck   = "check"
	quizNext    = "next"
	quizFinish  = "finish"
	quizRestart = "restart"
	quizQuit    = "quit"
)

// Settings sub-actions.
const (
	settingsMenu     = "menu"
	settingsLength   = "length"
	settingsCategory = "category"
)

const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam parses the i-th parameter as an int.
func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil {
		return 0, false
	}
	return n, true
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildQuizStartCallback starts a new quiz; an empty category uses the
// learner's settings.
func buildQuizStartCallback(category string) string {
	params := []string{quizStart}
	if category != "" {
		params = append(params, category)
	}
	return callbackData{Action: actionQuiz, Params: params}.encode()
}

// buildQuizSelectCallback selects option of question in session.
func buildQuizSelectCallback(sessionID string, question, option int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizSelect,
			sessionID,
			strconv.Itoa(question),
			strconv.Itoa(option),
		},
	}.encode()
}

// buildQuizActionCallback builds check, next, finish, restart and quit buttons.
func buildQuizActionCallback(sub, sessionID string) string {
	return callbackData{Action: actionQuiz, Params: []string{sub, sessionID}}.encode()
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionSettings,
		Params: params,
	}.encode()
}

func buildStatsCallback() string {
	return actionStats
}

func buildResetConfirmCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}
