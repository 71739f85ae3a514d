package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/term"

	"keyhook/beep"
	"keyhook/clipboard"
	"keyhook/config"
	"keyhook/doctor"
	"keyhook/effect"
	"keyhook/engine"
	"keyhook/hotkey"
	"keyhook/keybind"
	"keyhook/keys"
	"keyhook/log"
	"keyhook/login"
	"keyhook/shortcut"
	"keyhook/shutdown"
	"keyhook/tray"
	"keyhook/update"
)

var version = "dev"

// toggleAction is the shortcut name reported when the app shortcut flips
// the keybind gate.
const toggleAction = "toggle-keybinds"

var (
	guiMode      bool
	svc          *engine.Service
	configPath   string
	triggerCount atomic.Int64

	// profileMu serializes profile loads and applies. forceOff is the
	// -disabled flag; it closes the gate on the first apply only.
	profileMu sync.Mutex
	forceOff  bool

	lastMu     sync.Mutex
	lastAction string
)

var shutdownOnce sync.Once

func gracefulShutdown(code int) {
	shutdownOnce.Do(func() {
		log.SessionEnd(int(triggerCount.Load()))
		log.Close()
		tray.Quit()
		if tuiProgram != nil {
			tuiProgram.Quit()
		}
		os.Exit(code)
	})
}

// argValue returns the value of a -name flag from the raw argument list,
// for settings needed before flag.Parse runs.
func argValue(name string) string {
	args := os.Args[1:]
	for i, a := range args {
		a = strings.TrimLeft(a, "-")
		if v, ok := strings.CutPrefix(a, name+"="); ok {
			return v
		}
		if a == name && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// initCrashLog redirects fatal runtime output to crash_log.txt in the log
// directory.
func initCrashLog() {
	dir, err := log.ResolveDir(argValue("logpath"))
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return
	}
	crashPath := filepath.Join(dir, "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
	debug.SetCrashOutput(crashFile, debug.CrashOptions{})
}

func setLastAction(action string) {
	lastMu.Lock()
	lastAction = action
	lastMu.Unlock()
	tray.SetLastAction(action)
}

func getLastAction() string {
	lastMu.Lock()
	defer lastMu.Unlock()
	return lastAction
}

// setEnabled flips the keybind gate from any UI surface.
func setEnabled(on bool) {
	if svc == nil {
		return
	}
	svc.SetEnabled(on)
	tray.SetEnabled(on)
	guiSetEnabled(on)
	tuiSend(EnabledMsg{On: on})
	go beep.PlayToggle(on)
	log.Info(fmt.Sprintf("keybinds_enabled: %v", on))
}

func trayBindings(p *config.Profile) []tray.Binding {
	var out []tray.Binding
	for _, id := range p.IDs() {
		e := p.Keybinds[id]
		if !e.Enabled {
			continue
		}
		out = append(out, tray.Binding{ID: id, Combo: e.Key, Description: e.Description})
	}
	return out
}

func applyProfile(p *config.Profile) error {
	profileMu.Lock()
	defer profileMu.Unlock()
	return applyProfileLocked(p)
}

func applyProfileLocked(p *config.Profile) error {
	on := p.Enabled && !forceOff
	if err := svc.ApplyProfile(p.Bindings(), on); err != nil {
		return err
	}
	forceOff = false
	tray.SetKeybinds(trayBindings(p))
	tray.SetEnabled(on)
	guiSetEnabled(on)
	tuiSend(ProfileMsg{Path: configPath, Keybinds: tuiRows(p), Enabled: on})
	return nil
}

func reloadProfile() {
	profileMu.Lock()
	defer profileMu.Unlock()
	p, err := config.Load(configPath)
	if err == nil {
		err = applyProfileLocked(p)
	}
	if err != nil {
		log.Warnf("profile reload failed: %v", err)
		tray.SetError("profile: " + err.Error())
		tuiSend(ErrorMsg{Text: "profile reload failed: " + err.Error()})
		return
	}
	log.ProfileReloaded(configPath, svc.Registry().Len())
}

func onTrigger(kb keybind.Keybind) {
	triggerCount.Add(1)
	setLastAction(kb.Action())
	go beep.PlayTrigger()
}

func runUpdate() int {
	if version == "dev" {
		fmt.Println("Dev build, cannot check for updates.")
		return 0
	}
	fmt.Printf("keyhook %s, checking for updates...\n", version)
	c := update.NewChecker(os.TempDir())
	c.Progress = os.Stderr
	ctx := context.Background()
	rel, err := c.Latest(ctx, version)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	if rel == nil {
		fmt.Println("Already up to date.")
		return 0
	}
	fmt.Printf("Update available: %s -> %s\n", version, rel.Version)
	fmt.Print("Continue? [y/N] ")
	var answer string
	fmt.Scanln(&answer)
	if answer != "y" && answer != "Y" {
		fmt.Println("Aborted.")
		return 0
	}
	fmt.Printf("Downloading %s...\n", rel.Version)
	if err := c.Apply(ctx, rel); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	fmt.Printf("Updated to %s\n", rel.Version)
	return 0
}

// watchShortcut toggles the keybind gate each time the app shortcut fires.
func watchShortcut(ctx context.Context, combo string) {
	set, err := keys.ParseCombo(combo)
	if err != nil {
		log.Warnf("toggle shortcut %q: %v", combo, err)
		return
	}
	sc, err := shortcut.New(set)
	if err != nil {
		log.Warnf("toggle shortcut %q: %v", combo, err)
		return
	}
	if err := sc.Register(); err != nil {
		log.Warnf("toggle shortcut register: %v", err)
		return
	}
	defer sc.Unregister()
	for {
		select {
		case <-ctx.Done():
			return
		case <-sc.Keydown():
			setEnabled(!svc.Registry().Enabled())
			tuiSend(StatusMsg{Text: svc.HandleShortcutAction(toggleAction)})
		}
	}
}

func run() {
	if len(os.Args) > 1 && os.Args[1] == "update" {
		os.Exit(runUpdate())
	}

	configFlag := flag.String("config", "", "keybind profile path (default: $KEYHOOK_CONFIG or OS config dir)")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	testFlag := flag.Bool("test", false, "Test mode (headless, stdin-driven)")
	flag.Bool("gui", false, "Show the overlay window (requires a build with -tags gui)")
	noTrayFlag := flag.Bool("no-tray", false, "Do not show the menu bar icon")
	noBeepFlag := flag.Bool("no-beep", false, "Disable audible feedback")
	disabledFlag := flag.Bool("disabled", false, "Start with keybinds disabled")
	toggleFlag := flag.String("toggle", "Ctrl+Shift+F10", "Application shortcut that enables/disables keybinds")
	tuiFlag := flag.Bool("tui", true, "Run with terminal UI when attached to a terminal")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run system diagnostics and exit")
	profileFlag := flag.String("pprof", "", "Enable pprof profiling server (e.g., :6060 or localhost:6060)")
	flag.Parse()

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)
	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}

	if *profileFlag != "" {
		go func() {
			fmt.Fprintf(os.Stderr, "pprof server listening on http://%s/debug/pprof/\n", *profileFlag)
			if err := http.ListenAndServe(*profileFlag, nil); err != nil {
				fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	if *versionFlag {
		fmt.Printf("keyhook %s\n", version)
		os.Exit(0)
	}
	if *doctorFlag {
		os.Exit(doctor.Run())
	}
	if *noBeepFlag {
		beep.Disable()
	}
	if *testFlag {
		os.Exit(runTestMode(*configFlag))
	}

	configPath, err = config.ResolvePath(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	prof, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}
	forceOff = *disabledFlag

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	plat := effect.Detect()
	req, ok := effect.Pick(plat)
	if !ok {
		req.Effect = ""
	}
	log.EffectChosen(req.Effect, plat.Name, plat.Version, plat.Build)

	if *tuiFlag && !guiMode && term.IsTerminal(int(os.Stdout.Fd())) {
		startTUI(hotkey.Backend(), *toggleFlag)
	}

	sink := buildSink()
	defer closeSinks()
	reg := keybind.NewRegistry()
	svc = engine.NewService(reg, sink)
	if err := applyProfile(prof); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying profile %s: %v\n", configPath, err)
		log.Errorf("apply profile: %v", err)
		gracefulShutdown(1)
	}
	log.SessionStart(hotkey.Backend(), configPath, reg.Len())

	tray.OnCopyLast(func() {
		if a := getLastAction(); a != "" {
			if err := clipboard.Copy(a); err != nil {
				log.Warnf("clipboard copy: %v", err)
			}
		}
	})
	tray.OnToggle(setEnabled)
	tray.OnReload(reloadProfile)
	tray.SetLogin(login.Enabled())
	tray.OnLogin(func(on bool) error {
		if on {
			return login.Enable()
		}
		return login.Disable()
	})
	var trayQuit <-chan struct{}
	if !*noTrayFlag && !guiMode {
		trayQuit = tray.Init()
	}

	ctx, stop := shutdown.Context(context.Background())
	defer stop()

	go func() {
		if err := config.Watch(ctx, configPath, reloadProfile); err != nil {
			log.Warnf("profile watch: %v", err)
		}
	}()
	go update.NewChecker(log.Dir()).Watch(ctx, version, func(rel update.Release) {
		log.Info("update_available: " + rel.Version)
		tuiSend(UpdateAvailableMsg{Version: rel.Version})
		tray.SetUpdateAvailable(rel.Version)
	})
	go watchShortcut(ctx, *toggleFlag)
	go beep.Init()

	go func() {
		select {
		case <-ctx.Done():
		case <-trayQuit:
		}
		gracefulShutdown(0)
	}()

	d := engine.NewDispatcher(hotkey.New(), reg, sink)
	d.OnTrigger = onTrigger
	if err := d.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		beep.PlayError()
		if tuiProgram != nil {
			// keep the error on screen until the user quits
			<-ctx.Done()
		}
		gracefulShutdown(1)
	}
	gracefulShutdown(0)
}
