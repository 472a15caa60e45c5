//go:build !release

package resources

const configDir = ".inputmaster"

func resourcePath() (string, error) {
	return configDir, nil
}
