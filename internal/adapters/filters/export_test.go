package filters

var AlreadyMinified = alreadyMinified
