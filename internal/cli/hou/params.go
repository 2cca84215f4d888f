package hou

import "yoho/internal/cli/paramutils"

var parseArgs = paramutils.ParseBranchArg
