package msg

import "strings"

func MatchCommand(msg string, variants []string) bool {
	for _, v := range variants {
		if strings.ToLower(msg) == strings.ToLower(CommandPrefix+strings.TrimPrefix(v, CommandPrefix)) {
			return true
		}
	}

	return false
}

func IsCommand(msg string) bool {
	return strings.HasPrefix(msg, CommandPrefix)
}

// CommandArgs returns the words after the command itself.
func CommandArgs(msg string) []string {
	fields := strings.Fields(msg)
	if len(fields) < 2 {
		return nil
	}

	return fields[1:]
}
