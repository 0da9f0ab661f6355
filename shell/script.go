package shell

import (
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("wordfinder_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

func pushError(L *lua.LState, what string, err error) int {
	log.Err(err).Msg("error-executing-" + what)
	L.Push(lua.LString("ERROR: " + err.Error()))
	return 1
}

// Find returns the output of the find command.
func Find(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.find(&shellcmd{cmd: "find", args: []string{L.CheckString(1)}})
	if err != nil {
		return pushError(L, "find", err)
	}
	L.Push(lua.LString(r.message))
	return 1
}

// Words returns the matching words as a lua array.
func Words(L *lua.LState) int {
	sc := getShell(L)
	hand, err := sc.normalizeHand(L.CheckString(1))
	if err != nil {
		return pushError(L, "words", err)
	}
	qr, err := sc.query(hand)
	if err != nil {
		return pushError(L, "words", err)
	}
	tbl := L.NewTable()
	for _, w := range qr.words {
		tbl.Append(lua.LString(w))
	}
	L.Push(tbl)
	return 1
}

// Best returns the best word and its score. The word is nil if no word
// scores above zero.
func Best(L *lua.LState) int {
	sc := getShell(L)
	hand, err := sc.normalizeHand(L.CheckString(1))
	if err != nil {
		return pushError(L, "best", err)
	}
	qr, err := sc.query(hand)
	if err != nil {
		return pushError(L, "best", err)
	}
	if qr.best.Found() {
		L.Push(lua.LString(qr.best.Word))
	} else {
		L.Push(lua.LNil)
	}
	L.Push(lua.LNumber(qr.best.Score))
	return 2
}

func Score(L *lua.LState) int {
	sc := getShell(L)
	pts, err := sc.letterDist.WordScore(L.CheckString(1))
	if err != nil {
		return pushError(L, "score", err)
	}
	L.Push(lua.LNumber(pts))
	return 1
}

func Lexicon(L *lua.LState) int {
	sc := getShell(L)
	r, err := sc.lexicon(&shellcmd{cmd: "lexicon", args: []string{L.CheckString(1)}, options: CmdOptions{}})
	if err != nil {
		return pushError(L, "lexicon", err)
	}
	L.Push(lua.LString(r.message))
	return 1
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()
	// Scripts can `require("json")` to emit machine-readable results.
	luajson.Preload(L)

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("wordfinder_shell", lsc)
	L.SetGlobal("wordfinder_find", L.NewFunction(Find))
	L.SetGlobal("wordfinder_words", L.NewFunction(Words))
	L.SetGlobal("wordfinder_best", L.NewFunction(Best))
	L.SetGlobal("wordfinder_score", L.NewFunction(Score))
	L.SetGlobal("wordfinder_lexicon", L.NewFunction(Lexicon))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return nil, nil
}
