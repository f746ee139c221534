package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const activateCommand = "activate"

// InstanceGuard holds the single-instance lock. While it is held, later
// launches can ask the running instance to bring its window forward.
type InstanceGuard struct {
	mu       sync.Mutex
	listener net.Listener
	done     chan struct{}
}

// AcquireSingleInstance binds a localhost port derived from appName. When the
// port is taken, the running instance is asked to activate and the call fails
// with ErrAlreadyRunning.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := instanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		if notifyErr := notifyRunning(address); notifyErr != nil {
			return nil, fmt.Errorf("%w on %s (notify: %v)", ErrAlreadyRunning, address, notifyErr)
		}
		return nil, fmt.Errorf("%w on %s", ErrAlreadyRunning, address)
	}
	return &InstanceGuard{listener: listener, done: make(chan struct{})}, nil
}

// Serve calls onActivate for every activation request from a later launch.
// It blocks until Release.
func (guard *InstanceGuard) Serve(onActivate func()) {
	guard.mu.Lock()
	listener := guard.listener
	guard.mu.Unlock()
	if listener == nil {
		return
	}

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-guard.done:
				return
			default:
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			return
		}
		if readCommand(conn) == activateCommand && onActivate != nil {
			onActivate()
		}
	}
}

// Release frees the lock and stops Serve.
func (guard *InstanceGuard) Release() error {
	if guard == nil {
		return nil
	}
	guard.mu.Lock()
	defer guard.mu.Unlock()
	if guard.listener == nil {
		return nil
	}
	close(guard.done)
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

func notifyRunning(address string) error {
	conn, err := net.DialTimeout("tcp", address, time.Second)
	if err != nil {
		return err
	}
	defer conn.Close()
	_ = conn.SetWriteDeadline(time.Now().Add(time.Second))
	_, err = fmt.Fprintln(conn, activateCommand)
	return err
}

func readCommand(conn net.Conn) string {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func instanceAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
}

// portFromName maps appName onto 20000-39999.
func portFromName(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return 20000 + int(hash.Sum32()%20000)
}
