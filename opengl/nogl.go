//go:build nogl

package opengl

import (
	"os"

	"github.com/PrincetonUniversity/boidswarm"
	"github.com/pkg/errors"
)

// Run returns an error explaining that OpenGL support is disabled.
func Run(s *boidswarm.Swarm, conf *Config) error {
	return errors.Errorf("%s was built without OpenGL support", os.Args[0])
}
