package whitelist

import (
	"regexp"
	"sync"
)

// Access control for the stats web service. Patterns are regular
// expressions matched against the remote IP; an empty list allows
// every address.

var (
	lock     sync.RWMutex
	patterns = map[string]*regexp.Regexp{}
)

func Setup(list []string) error {
	lock.Lock()
	defer lock.Unlock()

	for _, p := range list {
		re, err := regexp.Compile(p)
		if err != nil {
			return err
		}
		patterns[p] = re
	}
	return nil
}

// VerifyIP reports whether the address is allowed to query stats.
func VerifyIP(ip string) bool {
	lock.RLock()
	defer lock.RUnlock()

	if len(patterns) == 0 {
		return true
	}
	for _, re := range patterns {
		if re.MatchString(ip) {
			return true
		}
	}
	return false
}

func List() []string {
	lock.RLock()
	defer lock.RUnlock()

	list := make([]string, 0, len(patterns))
	for p := range patterns {
		list = append(list, p)
	}
	return list
}

func Clear() {
	lock.Lock()
	defer lock.Unlock()

	patterns = map[string]*regexp.Regexp{}
}
