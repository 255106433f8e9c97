package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const tempSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// WriteFileAtomic escreve em um arquivo temporário no mesmo diretório e só
// então o renomeia para o destino. Em caso de erro o destino não é tocado.
func WriteFileAtomic(path string, content io.WriterTo) (err error) {
	id, err := gonanoid.Generate(tempSuffixAlphabet, 8)
	if err != nil {
		return fmt.Errorf("erro ao gerar nome temporário: %w", err)
	}

	dir, name := filepath.Split(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s-%s.tmp", name, id))

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário: %w", err)
	}

	defer func() {
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = content.WriteTo(file); err != nil {
		return fmt.Errorf("erro ao escrever arquivo: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("erro ao fechar arquivo: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("erro ao mover arquivo para o destino: %w", err)
	}

	return nil
}
