package awinclient

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// throttleWindow é a janela fixa do limitador de chamadas.
const throttleWindow = 60 * time.Second

// rateThrottle conta as chamadas feitas na janela corrente e bloqueia quando
// o limite é atingido. É uma janela fixa, não deslizante: atingido o limite,
// a espera é sempre a janela inteira e o contador volta para 1, porque a
// chamada que atravessou a espera também conta. O contador fica sempre em
// [0, limite] e não sobrevive ao reinício da instância.
type rateThrottle struct {
	mu    sync.Mutex
	limit int
	count int
	sleep func(time.Duration)
}

func newRateThrottle(limit int) *rateThrottle {
	return &rateThrottle{
		limit: limit,
		sleep: time.Sleep,
	}
}

// Wait consulta o contador antes de cada chamada à API: abaixo do limite,
// incrementa e libera na hora; no limite, dorme a janela inteira antes de
// liberar. Limite zero desativa o limitador por completo, sem contagem nem
// espera. A espera não é cancelável.
func (t *rateThrottle) Wait() {
	if t.limit <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.count < t.limit {
		t.count++
		return
	}

	logrus.WithFields(logrus.Fields{
		"limit":  t.limit,
		"window": throttleWindow.String(),
	}).Debug("awin: rate limit reached, waiting for next window")

	t.sleep(throttleWindow)
	t.count = 1
}
